package order

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverAlreadyAssigned is returned when assigning a driver to an order
	// that already has one. The driver field is set at most once.
	ErrDriverAlreadyAssigned = errors.New("order already has a driver assigned")
)

// Order is the aggregate root for the order lifecycle. It is created Pending
// with at least one item, and its total is the sum of the items' frozen line
// totals at creation time.
//
// Invariants:
//   - Must have valid order, restaurant and customer identifiers
//   - Must contain at least one item
//   - Total equals the sum of item totals at creation
//   - The driver, once assigned, is never replaced
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	customerID   kernel.UUID
	driverID     *kernel.UUID
	status       Status
	items        []*Item
	total        int64

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The total is computed as the
// sum of the items' line totals and frozen.
func NewOrder(id, restaurantID, customerID kernel.UUID, items []*Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range order.items {
		order.total += item.Total()
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// driver assignment and stored total.
func RestoreOrder(
	id, restaurantID, customerID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	items []*Item,
	total int64,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		driver := *driverID
		order.driverID = &driver
	}

	if total < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%d is negative", total))
	}
	order.total = total

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Driver returns the assigned driver's ID, or nil if no driver took the order yet.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order lines. The returned slice is a copy.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total in minor currency units, frozen at creation.
func (o *Order) Total() int64 {
	return o.total
}

// AssignDriver sets the order's driver. Assignment happens at most once:
// a second call returns ErrDriverAlreadyAssigned regardless of the driver.
//
// Note: command handlers rely on the repository's conditional update for race
// safety between processes; this method guards the in-memory aggregate.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	o.driverID = &driverID
	return nil
}

// ChangeStatus moves the order to a new lifecycle status. Only membership in
// the known status set is enforced here; which role may set which status is
// the access policy's concern.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
