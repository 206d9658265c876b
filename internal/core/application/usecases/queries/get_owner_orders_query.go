package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"
)

var ErrGetOwnerOrdersQueryIsNotConstructed = errors.New(
	"GetOwnerOrdersQuery must be created via NewGetOwnerOrdersQuery constructor",
)

// GetOwnerOrdersQuery retrieves the orders of one restaurant with their items,
// optionally narrowed to a set of statuses. This is the owner-facing reporting
// path; the HTTP adapter resolves and authorizes the restaurant before calling.
type GetOwnerOrdersQuery struct {
	restaurantID kernel.UUID
	statuses     []order.Status

	guard guard.ConstructorGuard
}

// NewGetOwnerOrdersQuery creates a query for a restaurant's orders.
// An empty status list returns orders in every lifecycle state.
func NewGetOwnerOrdersQuery(restaurantID kernel.UUID, statuses []order.Status) (GetOwnerOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOwnerOrdersQuery{}, err
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetOwnerOrdersQuery{}, err
		}
	}

	query := GetOwnerOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}
	query.statuses = make([]order.Status, len(statuses))
	copy(query.statuses, statuses)

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerOrdersQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant.
func (q GetOwnerOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Statuses returns the status filter. Empty means all statuses.
func (q GetOwnerOrdersQuery) Statuses() []order.Status {
	statuses := make([]order.Status, len(q.statuses))
	copy(statuses, q.statuses)
	return statuses
}
