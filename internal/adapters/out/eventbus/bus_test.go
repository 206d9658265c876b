package eventbus_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus() *eventbus.Bus {
	return eventbus.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newBusOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Bulgogi Burger", nil, 1200)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []*order.Item{item})
	require.NoError(t, err)
	return o
}

func TestBus_PublishReachesSubscriber(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.ChannelPendingOrder)
	defer bus.Unsubscribe(sub)

	published := newBusOrder(t)
	bus.Publish(context.Background(), ports.OrderEvent{
		Channel: ports.ChannelPendingOrder,
		Order:   published,
	})

	select {
	case event := <-sub.Events():
		assert.Equal(t, ports.ChannelPendingOrder, event.Channel)
		assert.True(t, event.Order.IsEqual(published))
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestBus_SubscriberOnlySeesItsChannels(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.ChannelCookedOrder)
	defer bus.Unsubscribe(sub)

	bus.Publish(context.Background(), ports.OrderEvent{
		Channel: ports.ChannelPendingOrder,
		Order:   newBusOrder(t),
	})

	select {
	case event := <-sub.Events():
		t.Fatalf("unexpected event on channel %s", event.Channel)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_UnsubscribeClosesStream(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.ChannelOrderUpdated)

	bus.Unsubscribe(sub)

	_, open := <-sub.Events()
	assert.False(t, open)

	// A second unsubscribe must not panic.
	bus.Unsubscribe(sub)
}

func TestBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.ChannelOrderUpdated)
	defer bus.Unsubscribe(sub)

	published := newBusOrder(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Nobody reads from sub; publishing far past the buffer must not block.
		for range 100 {
			bus.Publish(context.Background(), ports.OrderEvent{
				Channel: ports.ChannelOrderUpdated,
				Order:   published,
			})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	bus := newBus()
	published := newBusOrder(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := bus.Subscribe(ports.ChannelOrderTaken)
			bus.Publish(context.Background(), ports.OrderEvent{
				Channel: ports.ChannelOrderTaken,
				Order:   published,
			})
			bus.Unsubscribe(sub)
		}()
	}
	wg.Wait()
}
