package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders visible to a user according to their
// role: a client's own orders, a driver's assigned orders, or every order
// placed at an owner's restaurants. An optional status narrows the result.
type GetOrdersQuery struct {
	userID kernel.UUID
	role   user.Role
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the orders visible to the given user.
// Pass a nil status to return orders in every lifecycle state.
func NewGetOrdersQuery(userID kernel.UUID, role user.Role, status *order.Status) (GetOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		userID: userID,
		role:   role,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the acting user.
func (q GetOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the acting user's role.
func (q GetOrdersQuery) Role() user.Role {
	return q.role
}

// Status returns the optional status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
