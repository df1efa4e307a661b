package orders

import "github.com/emabi2002/pngsme/pkg/enums"

// transitions holds the permitted operational moves. Terminal states and the
// two pending states have no other outgoing edges; disputes and refunds are
// raised out-of-band and never through seller operations.
var transitions = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPendingConfirmation: {
		enums.OrderStatusConfirmed,
		enums.OrderStatusCancelled,
	},
	enums.OrderStatusConfirmed: {
		enums.OrderStatusPacked,
	},
	enums.OrderStatusPacked: {
		enums.OrderStatusOutForDelivery,
	},
	enums.OrderStatusOutForDelivery: {
		enums.OrderStatusDelivered,
	},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to enums.OrderStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the permitted targets from the given status.
func NextStatuses(from enums.OrderStatus) []enums.OrderStatus {
	out := make([]enums.OrderStatus, len(transitions[from]))
	copy(out, transitions[from])
	return out
}
