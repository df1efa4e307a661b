package types

// ProductSnapshot freezes the display fields of a product at the moment an
// order item is created, so later product edits or deletion never alter
// historical order records.
type ProductSnapshot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}
