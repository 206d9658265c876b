package commands

import (
	"context"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Line totals are computed through the price calculator and frozen on the order;
// later menu changes never affect an order already placed.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PriceCalculator
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for placing orders.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	calculator services.PriceCalculator,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		publisher:  publisher,
	}
}

// Handle processes the command: verifies the customer, prices every line against
// the restaurant's menu, persists the order and announces it to the restaurant's
// owner on the pending channel after the transaction commits.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	customer, err := uow.UserRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if customer.Role() != user.Client {
		return errs.NewPermissionDeniedErrorWithCause("create order",
			fmt.Errorf("user %s has role %s", customer.ID(), customer.Role()))
	}

	target, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		dish, err := uow.RestaurantRepository().GetDish(ctx, line.DishID)
		if err != nil {
			return err
		}

		if !dish.RestaurantID().IsEqual(target.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("dish",
				fmt.Errorf("dish %s belongs to another restaurant", dish.ID()))
		}

		total, err := h.calculator.LineTotal(dish, line.Selections)
		if err != nil {
			return err
		}

		item, err := order.NewItem(kernel.NewUUID(), dish.ID(), dish.Name(), line.Selections, total)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.RestaurantID(), cmd.CustomerID(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.OrderEvent{
		Channel: ports.ChannelPendingOrder,
		Order:   newOrder,
		OwnerID: target.OwnerID(),
	})

	return nil
}
