package commands

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrAddDishCommandIsNotConstructed = errors.New(
	"AddDishCommand must be created via NewAddDishCommand constructor",
)

// AddDishCommand represents a request to add a dish to a restaurant's menu,
// with an optional set of declared customization options.
type AddDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	price        int64
	options      []restaurant.Option

	guard guard.ConstructorGuard
}

// NewAddDishCommand creates a command to add a dish to a restaurant's menu.
// Price is in minor currency units and must not be negative.
func NewAddDishCommand(
	dishID, restaurantID, ownerID kernel.UUID,
	name string,
	price int64,
	options []restaurant.Option,
) (AddDishCommand, error) {
	command := AddDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDishID(dishID),
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return AddDishCommand{}, err
	}

	command.options = make([]restaurant.Option, len(options))
	copy(command.options, options)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDishCommand) Validate() error {
	return c.guard.Validate(ErrAddDishCommandIsNotConstructed)
}

// DishID returns the identifier for the new dish.
func (c AddDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// RestaurantID returns the identifier of the target restaurant.
func (c AddDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the identifier of the acting owner.
func (c AddDishCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the dish's display name.
func (c AddDishCommand) Name() string {
	return c.name
}

// Price returns the dish's base price in minor currency units.
func (c AddDishCommand) Price() int64 {
	return c.price
}

// Options returns the declared customizations. The returned slice is a copy.
func (c AddDishCommand) Options() []restaurant.Option {
	options := make([]restaurant.Option, len(c.options))
	copy(options, c.options)
	return options
}

func (c *AddDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *AddDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *AddDishCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *AddDishCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddDishCommand) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	c.price = price
	return nil
}
