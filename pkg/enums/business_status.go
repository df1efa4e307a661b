package enums

import "fmt"

// BusinessStatus tracks admin approval of a seller business. Only
// approved businesses can receive orders at checkout.
type BusinessStatus string

const (
	BusinessStatusPending   BusinessStatus = "pending"
	BusinessStatusApproved  BusinessStatus = "approved"
	BusinessStatusRejected  BusinessStatus = "rejected"
	BusinessStatusSuspended BusinessStatus = "suspended"
)

var validBusinessStatuses = []BusinessStatus{
	BusinessStatusPending,
	BusinessStatusApproved,
	BusinessStatusRejected,
	BusinessStatusSuspended,
}

// String implements fmt.Stringer.
func (b BusinessStatus) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BusinessStatus.
func (b BusinessStatus) IsValid() bool {
	for _, candidate := range validBusinessStatuses {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBusinessStatus converts raw input into a BusinessStatus.
func ParseBusinessStatus(value string) (BusinessStatus, error) {
	for _, candidate := range validBusinessStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid business status %q", value)
}
