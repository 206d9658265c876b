package commands

import (
	"context"
	"fmt"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// TakeOrderCommandHandler handles the business logic of a driver claiming an order.
// The claim is atomic at the persistence layer: of two concurrent drivers exactly
// one wins the order, the other receives a Conflict error.
type TakeOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewTakeOrderCommandHandler creates a handler for taking orders.
func NewTakeOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the command: verifies the driver, fails fast if the order
// already has a driver, then performs the conditional assignment. On success it
// publishes the updated snapshot and tells other candidate drivers the order is
// gone.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
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

	driver, err := uow.UserRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if driver.Role() != user.Delivery {
		return errs.NewPermissionDeniedErrorWithCause("take order",
			fmt.Errorf("user %s has role %s", driver.ID(), driver.Role()))
	}

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Fast path: the order was visibly taken before we even tried. The
	// conditional update below still decides races that slip past this read.
	if target.Driver() != nil {
		return errs.NewConflictErrorWithCause("order", cmd.OrderID(),
			fmt.Errorf("driver %s already took the order", target.Driver()))
	}

	rest, err := uow.RestaurantRepository().Get(ctx, target.RestaurantID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().AssignDriver(ctx, cmd.OrderID(), cmd.DriverID()); err != nil {
		return err
	}

	if err = target.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.OrderEvent{
		Channel: ports.ChannelOrderUpdated,
		Order:   target,
		OwnerID: rest.OwnerID(),
	})

	h.publisher.Publish(ctx, ports.OrderEvent{
		Channel: ports.ChannelOrderTaken,
		Order:   target,
		OwnerID: rest.OwnerID(),
	})

	return nil
}
