package commands

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// EditOrderStatusCommandHandler handles the business logic for order status changes.
// The access policy gates both visibility of the order and which role may set
// which target status.
type EditOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	publisher  ports.EventPublisher
}

// NewEditOrderStatusCommandHandler creates a handler for status changes.
func NewEditOrderStatusCommandHandler(
	uowFactory UoWFactory,
	policy services.AccessPolicy,
	publisher ports.EventPublisher,
) EditOrderStatusCommandHandler {
	return EditOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
	}
}

// Handle processes the command: loads the actor and the order, checks the access
// policy, persists the new status and publishes lifecycle notifications after
// the transaction commits. An owner moving the order into the kitchen announces
// it on the cooked channel for drivers; a driver picking it up notifies the
// customer; every change lands on the updated channel.
func (h EditOrderStatusCommandHandler) Handle(ctx context.Context, cmd EditOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, target.RestaurantID())
	if err != nil {
		return err
	}

	if err = h.policy.CheckView(actor, target, rest.OwnerID()); err != nil {
		return err
	}

	if err = h.policy.CheckEditStatus(actor.Role(), cmd.Status()); err != nil {
		return err
	}

	if err = target.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if actor.Role() == user.Owner && cmd.Status() == order.Cooking {
		h.publisher.Publish(ctx, ports.OrderEvent{
			Channel: ports.ChannelCookedOrder,
			Order:   target,
			OwnerID: rest.OwnerID(),
		})
	}

	if actor.Role() == user.Delivery && cmd.Status() == order.PickedUp {
		h.publisher.Publish(ctx, ports.OrderEvent{
			Channel: ports.ChannelPickedUpOrder,
			Order:   target,
			OwnerID: rest.OwnerID(),
		})
	}

	h.publisher.Publish(ctx, ports.OrderEvent{
		Channel: ports.ChannelOrderUpdated,
		Order:   target,
		OwnerID: rest.OwnerID(),
	})

	return nil
}
