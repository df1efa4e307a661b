package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/emabi2002/pngsme/pkg/bus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type recordingPublisher struct {
	events []bus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt bus.Event) {
	p.events = append(p.events, evt)
}

type failingStorage struct{}

func (failingStorage) Load(context.Context, uuid.UUID) ([]Item, error) {
	return nil, fmt.Errorf("storage down")
}

func (failingStorage) Save(context.Context, uuid.UUID, []Item) error {
	return fmt.Errorf("storage down")
}

func (failingStorage) Delete(context.Context, uuid.UUID) error {
	return fmt.Errorf("storage down")
}

func newTestStore(t *testing.T, storage Storage, publisher bus.Publisher) *Store {
	t.Helper()
	store, err := NewStore(storage, publisher, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStoreAddAndTotal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, NewMemoryStorage(), nil)
	userID := uuid.New()

	kaukau := Item{
		ProductID:  uuid.New(),
		BusinessID: uuid.New(),
		Name:       "kaukau",
		UnitPrice:  decimal.RequireFromString("15.00"),
		Quantity:   2,
	}
	bilum := Item{
		ProductID:  uuid.New(),
		BusinessID: uuid.New(),
		Name:       "bilum",
		UnitPrice:  decimal.RequireFromString("85.00"),
		Quantity:   1,
	}

	store.AddItem(ctx, userID, kaukau)
	store.AddItem(ctx, userID, bilum)

	if got := store.Count(ctx, userID); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
	if got := store.Total(ctx, userID); !got.Equal(decimal.RequireFromString("115.00")) {
		t.Fatalf("Total = %s, want 115.00", got)
	}
}

func TestStoreAddMergesQuantities(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, NewMemoryStorage(), nil)
	userID := uuid.New()

	item := Item{
		ProductID:  uuid.New(),
		BusinessID: uuid.New(),
		UnitPrice:  decimal.RequireFromString("5.00"),
		Quantity:   1,
	}
	store.AddItem(ctx, userID, item)
	store.AddItem(ctx, userID, item)

	items := store.Items(ctx, userID)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", items[0].Quantity)
	}
}

func TestStoreRejectsInvalidQuantities(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, NewMemoryStorage(), nil)
	userID := uuid.New()

	store.AddItem(ctx, userID, Item{ProductID: uuid.New(), Quantity: 0})
	store.AddItem(ctx, userID, Item{ProductID: uuid.Nil, Quantity: 2})
	if got := len(store.Items(ctx, userID)); got != 0 {
		t.Fatalf("len(items) = %d, want 0", got)
	}

	item := Item{ProductID: uuid.New(), BusinessID: uuid.New(), Quantity: 3}
	store.AddItem(ctx, userID, item)
	store.UpdateQuantity(ctx, userID, item.ProductID, 0)

	items := store.Items(ctx, userID)
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("items = %+v, want single entry with quantity 3", items)
	}
}

func TestStoreRemoveAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, NewMemoryStorage(), nil)
	userID := uuid.New()

	first := Item{ProductID: uuid.New(), BusinessID: uuid.New(), Quantity: 1}
	second := Item{ProductID: uuid.New(), BusinessID: uuid.New(), Quantity: 1}
	store.AddItem(ctx, userID, first)
	store.AddItem(ctx, userID, second)

	store.RemoveItem(ctx, userID, first.ProductID)
	if got := len(store.Items(ctx, userID)); got != 1 {
		t.Fatalf("len(items) after remove = %d, want 1", got)
	}

	store.Clear(ctx, userID)
	if got := len(store.Items(ctx, userID)); got != 0 {
		t.Fatalf("len(items) after clear = %d, want 0", got)
	}
}

func TestStoreDegradesToMemoryFallback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, failingStorage{}, nil)
	userID := uuid.New()

	item := Item{
		ProductID:  uuid.New(),
		BusinessID: uuid.New(),
		UnitPrice:  decimal.RequireFromString("10.00"),
		Quantity:   2,
	}
	store.AddItem(ctx, userID, item)

	items := store.Items(ctx, userID)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("items = %+v, want fallback to hold the entry", items)
	}
}

func TestStoreIneffectiveMutationsPublishNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	publisher := &recordingPublisher{}
	store := newTestStore(t, NewMemoryStorage(), publisher)
	userID := uuid.New()

	item := Item{ProductID: uuid.New(), BusinessID: uuid.New(), Quantity: 2}
	store.AddItem(ctx, userID, item)
	baseline := len(publisher.events)

	store.UpdateQuantity(ctx, userID, uuid.New(), 5)
	store.RemoveItem(ctx, userID, uuid.New())
	store.UpdateQuantity(ctx, userID, item.ProductID, 2)

	if got := len(publisher.events); got != baseline {
		t.Fatalf("events after no-op mutations = %d, want %d", got, baseline)
	}

	store.UpdateQuantity(ctx, userID, item.ProductID, 4)
	if got := len(publisher.events); got != baseline+1 {
		t.Fatalf("events after real mutation = %d, want %d", got, baseline+1)
	}
}

func TestStorePublishesCartChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	publisher := &recordingPublisher{}
	store := newTestStore(t, NewMemoryStorage(), publisher)
	userID := uuid.New()

	store.AddItem(ctx, userID, Item{ProductID: uuid.New(), BusinessID: uuid.New(), Quantity: 1})

	if len(publisher.events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(publisher.events))
	}
	evt := publisher.events[0]
	if evt.Topic != bus.TopicCartChanged {
		t.Fatalf("topic = %q, want %q", evt.Topic, bus.TopicCartChanged)
	}
	if evt.Payload["user_id"] != userID.String() {
		t.Fatalf("payload user_id = %v, want %s", evt.Payload["user_id"], userID)
	}
}
