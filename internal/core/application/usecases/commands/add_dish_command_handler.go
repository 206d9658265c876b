package commands

import (
	"context"
	"fmt"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// AddDishCommandHandler handles the business logic for extending a restaurant's menu.
// Only the owner of the restaurant may add dishes to it.
type AddDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddDishCommandHandler creates a handler for adding dishes.
func NewAddDishCommandHandler(uowFactory RestaurantUoWFactory) AddDishCommandHandler {
	return AddDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command, verifying ownership of the restaurant and
// persisting the dish in a transaction.
func (h AddDishCommandHandler) Handle(ctx context.Context, cmd AddDishCommand) error {
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

	owner, err := uow.UserRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if owner.Role() != user.Owner {
		return errs.NewPermissionDeniedErrorWithCause("add dish",
			fmt.Errorf("user %s has role %s", owner.ID(), owner.Role()))
	}

	target, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if !target.IsOwnedBy(owner.ID()) {
		return errs.NewPermissionDeniedErrorWithCause("add dish",
			fmt.Errorf("restaurant %s belongs to another owner", target.ID()))
	}

	dish, err := restaurant.NewDish(cmd.DishID(), cmd.RestaurantID(), cmd.Name(), cmd.Price(), cmd.Options())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().AddDish(ctx, dish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
