package bus

import (
	"context"
	"sync"
	"time"
)

// Topic names carried by the bus.
const (
	TopicCartChanged        = "cart.changed"
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
	TopicReviewCreated      = "review.created"
)

// Event is a typed envelope published by domain services.
type Event struct {
	Topic      string         `json:"topic"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Handler consumes an event. Handlers must not block the publisher.
type Handler func(ctx context.Context, evt Event)

// Publisher is the write side exposed to services.
type Publisher interface {
	Publish(ctx context.Context, evt Event)
}

// Bus is a simple in-process topic fanout.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]subscription
}

type subscription struct {
	id      uint64
	handler Handler
}

// New constructs an empty in-process bus.
func New() *Bus {
	return &Bus{handlers: make(map[string][]subscription)}
}

// Subscribe registers a handler for the given topic and returns a cancel
// function that removes it. Cancelling more than once is a no-op.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	if h == nil {
		return func() {}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers[topic] = append(b.handlers[topic], subscription{id: id, handler: h})
	return func() {
		b.unsubscribe(topic, id)
	}
}

func (b *Bus) unsubscribe(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.handlers[topic]
	for i := range subs {
		if subs[i].id == id {
			b.handlers[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to all handlers subscribed to its topic.
// Delivery is synchronous and best effort; a panicking handler does not stop
// the remaining handlers.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	b.mu.RLock()
	subs := append([]subscription(nil), b.handlers[evt.Topic]...)
	b.mu.RUnlock()

	for _, sub := range subs {
		invoke(ctx, sub.handler, evt)
	}
}

func invoke(ctx context.Context, h Handler, evt Event) {
	defer func() {
		_ = recover()
	}()
	h(ctx, evt)
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
