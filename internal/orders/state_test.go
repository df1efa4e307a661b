package orders

import (
	"testing"

	"github.com/emabi2002/pngsme/pkg/enums"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := map[enums.OrderStatus]map[enums.OrderStatus]bool{
		enums.OrderStatusPendingConfirmation: {
			enums.OrderStatusConfirmed: true,
			enums.OrderStatusCancelled: true,
		},
		enums.OrderStatusConfirmed: {
			enums.OrderStatusPacked: true,
		},
		enums.OrderStatusPacked: {
			enums.OrderStatusOutForDelivery: true,
		},
		enums.OrderStatusOutForDelivery: {
			enums.OrderStatusDelivered: true,
		},
	}

	for _, from := range enums.OrderStatuses() {
		for _, to := range enums.OrderStatuses() {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestNextStatuses(t *testing.T) {
	t.Parallel()

	if got := NextStatuses(enums.OrderStatusPendingConfirmation); len(got) != 2 {
		t.Fatalf("NextStatuses(pending_confirmation) = %v, want two targets", got)
	}
	if got := NextStatuses(enums.OrderStatusDelivered); len(got) != 0 {
		t.Fatalf("NextStatuses(delivered) = %v, want none", got)
	}
	if got := NextStatuses(enums.OrderStatusCancelled); len(got) != 0 {
		t.Fatalf("NextStatuses(cancelled) = %v, want none", got)
	}
}
