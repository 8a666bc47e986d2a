package events

import "sync"

// Handler receives published events. Handlers run synchronously on the
// publishing goroutine and must not block for long.
type Handler func(Event)

// Bus is a multi-subscriber broadcast channel with synchronous, in-order
// delivery. Subscribing and publishing are safe for concurrent use; handlers
// registered at publish time each receive the event in registration order.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers []subscription
}

type subscription struct {
	id int
	fn Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns a function that removes the
// subscription. Unsubscribing twice is a no-op.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers = append(b.handlers, subscription{id: id, fn: h})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.handlers {
			if sub.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every current subscriber in registration order and
// returns after the last handler has run.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers))
	copy(subs, b.handlers)
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(e)
	}
}
