package commands

import (
	"context"
	"fmt"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// CreateRestaurantCommandHandler handles the business logic for opening restaurants.
// Only users with the Owner role may create restaurants.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant creation.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command, verifying the acting user is an owner and
// persisting the restaurant in a transaction.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
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
		return errs.NewPermissionDeniedErrorWithCause("create restaurant",
			fmt.Errorf("user %s has role %s", owner.ID(), owner.Role()))
	}

	newRestaurant, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.OwnerID(), cmd.Name(), cmd.Position())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
