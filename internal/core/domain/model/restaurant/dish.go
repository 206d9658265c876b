package restaurant

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the NewDish factory method.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Choice is a named sub-selection of an option, optionally carrying its own surcharge.
// A nil Price means the choice is free.
type Choice struct {
	Name  string `json:"name"`
	Price *int64 `json:"price,omitempty"`
}

// Option is a named customization declared on a dish. An option either carries a
// flat surcharge (Price set) or offers priced Choices. When Price is set, the
// flat surcharge applies and any selected choice is ignored for pricing.
type Option struct {
	Name    string   `json:"name"`
	Price   *int64   `json:"price,omitempty"`
	Choices []Choice `json:"choices,omitempty"`
}

// SelectedOption records a customer's pick against a dish's declared options:
// the option name and, when the option offers choices, the chosen one.
type SelectedOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// Dish represents a menu entry of a restaurant. Prices are in minor currency
// units (e.g. cents).
//
// Invariants:
//   - Must have valid dish and restaurant identifiers
//   - Must have a non-empty name
//   - Base price must not be negative
//   - Declared options and choices must have non-empty names
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        int64
	options      []Option

	isConstructed bool
}

// NewDish creates a Dish with validation.
func NewDish(id, restaurantID kernel.UUID, name string, price int64, options []Option) (*Dish, error) {
	dish := &Dish{
		isConstructed: true,
	}

	if err := errors.Join(
		dish.setID(id),
		dish.setRestaurantID(restaurantID),
		dish.setName(name),
		dish.setPrice(price),
		dish.setOptions(options),
	); err != nil {
		return nil, err
	}

	return dish, nil
}

// RestoreDish reconstructs a Dish from persistence.
func RestoreDish(id, restaurantID kernel.UUID, name string, price int64, options []Option) (*Dish, error) {
	return NewDish(id, restaurantID, name, price, options)
}

// Validate ensures the Dish instance was properly constructed.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the identifier of the restaurant this dish belongs to.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the base price in minor currency units.
func (d *Dish) Price() int64 {
	return d.price
}

// Options returns the declared customizations of the dish.
// The returned slice is a copy; mutating it does not affect the dish.
func (d *Dish) Options() []Option {
	options := make([]Option, len(d.options))
	copy(options, d.options)
	return options
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	d.restaurantID = restaurantID
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setOptions(options []Option) error {
	for _, option := range options {
		if option.Name == "" {
			return errs.NewValueIsRequiredError("option name")
		}
		for _, choice := range option.Choices {
			if choice.Name == "" {
				return errs.NewValueIsRequiredError("choice name")
			}
		}
	}

	d.options = make([]Option, len(options))
	copy(d.options, options)
	return nil
}
