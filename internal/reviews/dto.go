package reviews

import (
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/google/uuid"
)

// CreateInput captures a buyer's review submission.
type CreateInput struct {
	ReviewerUserID uuid.UUID
	ProductID      uuid.UUID
	Rating         int
	Comment        string
}

// ReviewList wraps the paginated reviews plus the next page cursor.
type ReviewList struct {
	Reviews    []models.Review `json:"reviews"`
	NextCursor string          `json:"next_cursor,omitempty"`
}
