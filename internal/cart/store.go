package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/emabi2002/pngsme/pkg/bus"
	"github.com/emabi2002/pngsme/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store maintains per-buyer carts. Storage failures degrade to the in-memory
// fallback for the rest of the process lifetime; no error ever reaches the
// caller from a cart mutation.
type Store struct {
	mu       sync.Mutex
	storage  Storage
	fallback *MemoryStorage
	degraded bool
	bus      bus.Publisher
	logg     *logger.Logger
}

// NewStore builds a cart store backed by the provided storage.
func NewStore(storage Storage, publisher bus.Publisher, logg *logger.Logger) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	if publisher == nil {
		publisher = bus.NopPublisher{}
	}
	return &Store{
		storage:  storage,
		fallback: NewMemoryStorage(),
		bus:      publisher,
		logg:     logg,
	}, nil
}

// AddItem inserts the item or increments the quantity of an existing entry.
// Quantities below 1 are ignored.
func (s *Store) AddItem(ctx context.Context, userID uuid.UUID, item Item) {
	if item.Quantity < 1 || item.ProductID == uuid.Nil {
		return
	}
	s.mutate(ctx, userID, func(items []Item) ([]Item, bool) {
		for i := range items {
			if items[i].ProductID == item.ProductID {
				items[i].Quantity += item.Quantity
				return items, true
			}
		}
		return append(items, item), true
	})
}

// UpdateQuantity sets the quantity of an existing entry. Quantities below 1
// are rejected as a no-op; callers remove entries via RemoveItem.
func (s *Store) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) {
	if quantity < 1 {
		return
	}
	s.mutate(ctx, userID, func(items []Item) ([]Item, bool) {
		for i := range items {
			if items[i].ProductID == productID {
				changed := items[i].Quantity != quantity
				items[i].Quantity = quantity
				return items, changed
			}
		}
		return items, false
	})
}

// RemoveItem deletes the entry if present.
func (s *Store) RemoveItem(ctx context.Context, userID, productID uuid.UUID) {
	s.mutate(ctx, userID, func(items []Item) ([]Item, bool) {
		out := items[:0]
		for _, item := range items {
			if item.ProductID != productID {
				out = append(out, item)
			}
		}
		return out, len(out) != len(items)
	})
}

// Clear empties the buyer's cart.
func (s *Store) Clear(ctx context.Context, userID uuid.UUID) {
	s.mu.Lock()
	if err := s.active().Delete(ctx, userID); err != nil {
		s.degrade(ctx, err)
		_ = s.fallback.Delete(ctx, userID)
	}
	s.mu.Unlock()
	s.publish(ctx, userID)
}

// Items returns the buyer's current cart contents, best effort.
func (s *Store) Items(ctx context.Context, userID uuid.UUID) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.active().Load(ctx, userID)
	if err != nil {
		s.degrade(ctx, err)
		items, _ = s.fallback.Load(ctx, userID)
	}
	return items
}

// Total returns the sum of unit_price multiplied by quantity across entries.
func (s *Store) Total(ctx context.Context, userID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items(ctx, userID) {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Count returns the sum of quantities, not the distinct product count.
func (s *Store) Count(ctx context.Context, userID uuid.UUID) int {
	count := 0
	for _, item := range s.Items(ctx, userID) {
		count += item.Quantity
	}
	return count
}

func (s *Store) mutate(ctx context.Context, userID uuid.UUID, fn func([]Item) ([]Item, bool)) {
	s.mu.Lock()
	items, err := s.active().Load(ctx, userID)
	if err != nil {
		s.degrade(ctx, err)
		items, _ = s.fallback.Load(ctx, userID)
	}

	items, changed := fn(items)
	if !changed {
		s.mu.Unlock()
		return
	}

	if err := s.active().Save(ctx, userID, items); err != nil {
		s.degrade(ctx, err)
		_ = s.fallback.Save(ctx, userID, items)
	}
	s.mu.Unlock()

	s.publish(ctx, userID)
}

func (s *Store) active() Storage {
	if s.degraded {
		return s.fallback
	}
	return s.storage
}

func (s *Store) degrade(ctx context.Context, err error) {
	if s.degraded {
		return
	}
	s.degraded = true
	if s.logg != nil {
		s.logg.Error(ctx, "cart storage unavailable, falling back to memory", err)
	}
}

func (s *Store) publish(ctx context.Context, userID uuid.UUID) {
	s.bus.Publish(ctx, bus.Event{
		Topic:   bus.TopicCartChanged,
		Payload: map[string]any{"user_id": userID.String()},
	})
}
