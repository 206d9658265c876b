package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items, on behalf of a user.
// The handler enforces the same visibility rule as the access policy: clients
// see their own orders, drivers their assigned orders, owners the orders of
// their restaurants.
type GetOrderQuery struct {
	userID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order on behalf of the given user.
func NewGetOrderQuery(userID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		userID:  userID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// UserID returns the identifier of the acting user.
func (q GetOrderQuery) UserID() kernel.UUID {
	return q.userID
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is one order with its lines.
type GetOrderQueryResponse struct {
	OrderResponse
	Items []ItemResponse
}
