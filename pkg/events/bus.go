package events

import (
	"sync"
)

// Bus is a synchronous event bus for console-level communication.
// Handlers run on the emitting goroutine, in subscription order, so a host
// driving the console from one loop observes events in the order they happen.
type Bus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
}

type subscriberInfo struct {
	id      int
	handler func(interface{})
	once    bool
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers a handler for a specific event type.
// Returns an unsubscribe function.
func (bus *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	return bus.add(eventType, handler, false)
}

// SubscribeOnce registers a handler that will only be called once
func (bus *Bus) SubscribeOnce(eventType string, handler func(interface{})) func() {
	return bus.add(eventType, handler, true)
}

func (bus *Bus) add(eventType string, handler func(interface{}), once bool) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
		once:    once,
	})

	return func() {
		bus.unsubscribe(eventType, id)
	}
}

// Emit delivers an event to all subscribers of the given event type.
func (bus *Bus) Emit(eventType string, event interface{}) {
	bus.mu.Lock()
	subscribers := bus.subscribers[eventType]
	// Copy so handlers can subscribe or unsubscribe while we iterate
	handlersCopy := make([]subscriberInfo, len(subscribers))
	copy(handlersCopy, subscribers)

	// Once handlers are dropped before delivery so a re-entrant Emit
	// cannot call them twice
	for _, sub := range handlersCopy {
		if sub.once {
			bus.removeSubscriber(eventType, sub.id)
		}
	}
	bus.mu.Unlock()

	for _, sub := range handlersCopy {
		sub.handler(event)
	}
}

// HasSubscribers reports whether anything listens for eventType.
func (bus *Bus) HasSubscribers(eventType string) bool {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.subscribers[eventType]) > 0
}

// Clear removes all subscribers
func (bus *Bus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.subscribers = make(map[string][]subscriberInfo)
}

// unsubscribe removes a specific subscriber
func (bus *Bus) unsubscribe(eventType string, id int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.removeSubscriber(eventType, id)
}

// removeSubscriber removes a subscriber by ID (must be called with lock held).
// Order of the remaining subscribers is preserved.
func (bus *Bus) removeSubscriber(eventType string, id int) {
	subscribers := bus.subscribers[eventType]

	for i, sub := range subscribers {
		if sub.id == id {
			remaining := make([]subscriberInfo, 0, len(subscribers)-1)
			remaining = append(remaining, subscribers[:i]...)
			remaining = append(remaining, subscribers[i+1:]...)

			if len(remaining) == 0 {
				delete(bus.subscribers, eventType)
			} else {
				bus.subscribers[eventType] = remaining
			}
			break
		}
	}
}
