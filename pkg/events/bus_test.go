package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_SubscribeAndEmit(t *testing.T) {
	bus := NewBus()

	var receivedEvents []interface{}
	var secondReceived []interface{}

	bus.Subscribe("test.event", func(event interface{}) {
		receivedEvents = append(receivedEvents, event)
	})
	bus.Subscribe("test.event", func(event interface{}) {
		secondReceived = append(secondReceived, event)
	})

	testEvent := ConsoleToggledEvent{SessionID: "test-session", Open: true}
	bus.Emit("test.event", testEvent)

	// Delivery is synchronous, no waiting needed
	require.Len(t, receivedEvents, 1)
	require.Len(t, secondReceived, 1)
	assert.Equal(t, testEvent, receivedEvents[0])
	assert.Equal(t, testEvent, secondReceived[0])
}

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		bus.Subscribe("ordered", func(event interface{}) {
			order = append(order, name)
		})
	}

	bus.Emit("ordered", nil)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_MultipleEventTypes(t *testing.T) {
	bus := NewBus()

	var typeAEvents []interface{}
	var typeBEvents []interface{}

	bus.Subscribe("type.a", func(event interface{}) {
		typeAEvents = append(typeAEvents, event)
	})
	bus.Subscribe("type.b", func(event interface{}) {
		typeBEvents = append(typeBEvents, event)
	})

	bus.Emit("type.a", "event-a")
	bus.Emit("type.b", "event-b")

	assert.Equal(t, []interface{}{"event-a"}, typeAEvents)
	assert.Equal(t, []interface{}{"event-b"}, typeBEvents)
}

func TestBus_NoSubscribers(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		bus.Emit("non.existent", "test")
	})
	assert.False(t, bus.HasSubscribers("non.existent"))
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	callCount := 0
	unsubscribe := bus.Subscribe("unsub.event", func(event interface{}) {
		callCount++
	})

	bus.Emit("unsub.event", nil)
	assert.Equal(t, 1, callCount)

	unsubscribe()
	bus.Emit("unsub.event", nil)
	assert.Equal(t, 1, callCount, "Should not receive events after unsubscribe")
	assert.False(t, bus.HasSubscribers("unsub.event"))
}

func TestBus_SubscribeOnce(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.SubscribeOnce("once.event", func(event interface{}) {
		calls++
		// Re-entrant emit must not deliver to the once handler again
		bus.Emit("once.event", nil)
	})

	bus.Emit("once.event", nil)
	bus.Emit("once.event", nil)

	assert.Equal(t, 1, calls)
}

func TestBus_UnsubscribeKeepsOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe("e", func(interface{}) { order = append(order, "a") })
	unsubB := bus.Subscribe("e", func(interface{}) { order = append(order, "b") })
	bus.Subscribe("e", func(interface{}) { order = append(order, "c") })

	unsubB()
	bus.Emit("e", nil)

	assert.Equal(t, []string{"a", "c"}, order)
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe("cleared", func(interface{}) { called = true })
	bus.Clear()
	bus.Emit("cleared", nil)

	assert.False(t, called)
}

func TestBus_ConcurrentEmitIsSafe(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe("concurrent.event", func(event interface{}) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Emit("concurrent.event", nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, count)
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus()

	var failed []CommandFailedEvent
	bus.Subscribe(TopicCommandFailed, func(event interface{}) {
		failed = append(failed, event.(CommandFailedEvent))
	})

	bus.Publish(CommandFailedEvent{Command: "boom", Err: errors.New("bad")})

	require.Len(t, failed, 1)
	assert.Equal(t, "boom", failed[0].Command)
}
