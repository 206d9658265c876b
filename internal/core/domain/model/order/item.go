package order

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. It snapshots the dish name, the customer's
// selections and the computed line total at creation time, so later changes to
// the dish's price or options never alter existing orders.
type Item struct {
	id         kernel.UUID
	dishID     kernel.UUID
	dishName   string
	selections []restaurant.SelectedOption
	total      int64

	isConstructed bool
}

// NewItem creates an order line with a frozen total in minor currency units.
// The total comes from the price calculator and is never recomputed.
func NewItem(
	id, dishID kernel.UUID,
	dishName string,
	selections []restaurant.SelectedOption,
	total int64,
) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setDishID(dishID),
		item.setDishName(dishName),
		item.setTotal(total),
	); err != nil {
		return nil, err
	}

	item.selections = make([]restaurant.SelectedOption, len(selections))
	copy(item.selections, selections)

	return item, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(
	id, dishID kernel.UUID,
	dishName string,
	selections []restaurant.SelectedOption,
	total int64,
) (*Item, error) {
	return NewItem(id, dishID, dishName, selections, total)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// DishID returns the identifier of the dish this line refers to.
func (i *Item) DishID() kernel.UUID {
	return i.dishID
}

// DishName returns the dish name snapshotted at order time.
func (i *Item) DishName() string {
	return i.dishName
}

// Selections returns the customer's option selections for this line.
// The returned slice is a copy.
func (i *Item) Selections() []restaurant.SelectedOption {
	selections := make([]restaurant.SelectedOption, len(i.selections))
	copy(selections, i.selections)
	return selections
}

// Total returns the frozen line total in minor currency units.
func (i *Item) Total() int64 {
	return i.total
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	i.dishID = dishID
	return nil
}

func (i *Item) setDishName(dishName string) error {
	if dishName == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	i.dishName = dishName
	return nil
}

func (i *Item) setTotal(total int64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%d is negative", total))
	}
	i.total = total
	return nil
}
