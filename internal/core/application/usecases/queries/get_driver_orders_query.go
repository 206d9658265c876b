package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// MaxPickupDistanceMeters bounds how far from a driver a restaurant may be for
// its orders to show up in the driver feed. The comparison is strict: an order
// exactly at this distance is excluded.
const MaxPickupDistanceMeters = 3000.0

// GetDriverOrdersQuery retrieves unassigned orders whose restaurant lies within
// pickup range of the driver's position. Without an explicit status filter the
// feed shows orders being cooked or ready for pickup.
type GetDriverOrdersQuery struct {
	position kernel.GeoPoint
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for the driver order feed.
// An empty status list defaults to {Cooking, Cooked}.
func NewGetDriverOrdersQuery(position kernel.GeoPoint, statuses []order.Status) (GetDriverOrdersQuery, error) {
	if err := position.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetDriverOrdersQuery{}, err
		}
	}

	query := GetDriverOrdersQuery{
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if len(statuses) == 0 {
		query.statuses = []order.Status{order.Cooking, order.Cooked}
	} else {
		query.statuses = make([]order.Status, len(statuses))
		copy(query.statuses, statuses)
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// Position returns the driver's current position.
func (q GetDriverOrdersQuery) Position() kernel.GeoPoint {
	return q.position
}

// Statuses returns the effective status filter.
func (q GetDriverOrdersQuery) Statuses() []order.Status {
	statuses := make([]order.Status, len(q.statuses))
	copy(statuses, q.statuses)
	return statuses
}

// DriverOrderResponse is one entry of the driver feed: the order plus the
// restaurant's position and its distance from the driver in meters.
type DriverOrderResponse struct {
	OrderResponse
	RestaurantPosition kernel.GeoPoint
	DistanceMeters     float64
}
