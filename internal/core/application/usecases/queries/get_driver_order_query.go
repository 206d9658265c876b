package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetDriverOrderQueryIsNotConstructed = errors.New(
	"GetDriverOrderQuery must be created via NewGetDriverOrderQuery constructor",
)

// GetDriverOrderQuery retrieves one order for the driver feed detail view.
// When the driver's position is given, the response carries the distance to
// the restaurant.
type GetDriverOrderQuery struct {
	orderID  kernel.UUID
	position *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetDriverOrderQuery creates a query for one driver feed entry.
// Pass a nil position to skip the distance annotation.
func NewGetDriverOrderQuery(orderID kernel.UUID, position *kernel.GeoPoint) (GetDriverOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDriverOrderQuery{}, err
	}
	if position != nil {
		if err := position.Validate(); err != nil {
			return GetDriverOrderQuery{}, err
		}
	}

	return GetDriverOrderQuery{
		orderID:  orderID,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetDriverOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Position returns the driver's position, or nil when not provided.
func (q GetDriverOrderQuery) Position() *kernel.GeoPoint {
	return q.position
}

// GetDriverOrderQueryResponse is one order with its restaurant position and,
// when the driver's position was given, the distance to the restaurant.
type GetDriverOrderQueryResponse struct {
	OrderResponse
	RestaurantName     string
	RestaurantPosition kernel.GeoPoint
	DistanceMeters     *float64
}
