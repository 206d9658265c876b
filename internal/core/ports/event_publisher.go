package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// EventChannel names a notification stream that subscribers listen on.
type EventChannel string

const (
	// ChannelPendingOrder carries newly created (and re-announced) pending
	// orders, together with the owner id of the restaurant so owner
	// subscriptions can filter to their own restaurants.
	ChannelPendingOrder EventChannel = "order.pending"

	// ChannelCookedOrder signals drivers that an order entered the kitchen
	// and will soon be ready for pickup. Fired when an owner sets Cooking;
	// the channel name follows the driver-facing meaning of the event.
	ChannelCookedOrder EventChannel = "order.cooked"

	// ChannelPickedUpOrder signals the customer that a driver collected the order.
	ChannelPickedUpOrder EventChannel = "order.pickedup"

	// ChannelOrderUpdated carries every order snapshot change.
	ChannelOrderUpdated EventChannel = "order.updated"

	// ChannelOrderTaken informs candidate drivers that an order is no longer
	// available because another driver took it.
	ChannelOrderTaken EventChannel = "order.taken"
)

// OrderEvent is a lifecycle notification with the order snapshot it concerns.
// OwnerID is set on ChannelPendingOrder events; it is the restaurant owner the
// event is addressed to.
type OrderEvent struct {
	Channel EventChannel
	Order   *order.Order
	OwnerID kernel.UUID
}

// EventPublisher is the notification port injected into command handlers.
// Publication is fire-and-forget: delivery problems are the transport's to
// report, and never affect the state change that triggered the event.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent)
}
