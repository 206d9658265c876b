// Package eventbus provides an in-process implementation of the notification
// port. Order lifecycle events fan out to subscribers by channel name; the
// websocket adapter bridges subscriptions to connected clients.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"eats/internal/core/ports"
)

// subscriberBuffer is the per-subscription event buffer. A subscriber that
// falls this far behind starts losing events rather than blocking publishers.
const subscriberBuffer = 16

// Subscription is one listener on a set of event channels. Events arrive on
// Events() until Close.
type Subscription struct {
	events   chan ports.OrderEvent
	channels map[ports.EventChannel]struct{}
}

// Events returns the stream of events for this subscription.
func (s *Subscription) Events() <-chan ports.OrderEvent {
	return s.events
}

func (s *Subscription) wants(channel ports.EventChannel) bool {
	_, ok := s.channels[channel]
	return ok
}

// Bus is an in-process publish/subscribe hub implementing ports.EventPublisher.
// Delivery is non-blocking: a publisher never waits for slow subscribers, and
// a full subscriber buffer drops the event with a log line.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]struct{}
	logger        *slog.Logger
}

// NewBus creates an empty event bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subscriptions: make(map[*Subscription]struct{}),
		logger:        logger,
	}
}

// Subscribe registers a listener for the given channels.
// The caller must Unsubscribe when done to release the subscription.
func (b *Bus) Subscribe(channels ...ports.EventChannel) *Subscription {
	sub := &Subscription{
		events:   make(chan ports.OrderEvent, subscriberBuffer),
		channels: make(map[ports.EventChannel]struct{}, len(channels)),
	}
	for _, channel := range channels {
		sub.channels[channel] = struct{}{}
	}

	b.mu.Lock()
	b.subscriptions[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Unsubscribe removes the listener and closes its event stream.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscriptions[sub]; !ok {
		return
	}
	delete(b.subscriptions, sub)
	close(sub.events)
}

// Publish fans the event out to every subscription listening on its channel.
// Fire-and-forget per the port contract: delivery problems are logged, never
// returned.
func (b *Bus) Publish(_ context.Context, event ports.OrderEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subscriptions {
		if !sub.wants(event.Channel) {
			continue
		}

		select {
		case sub.events <- event:
		default:
			b.logger.Warn("event dropped for slow subscriber",
				"channel", string(event.Channel))
		}
	}
}
