package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetDriverOwnOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOwnOrdersQuery must be created via NewGetDriverOwnOrdersQuery constructor",
)

// GetDriverOwnOrdersQuery retrieves the orders assigned to a driver that moved
// during the current local calendar day. This backs the driver's daily ride
// overview.
type GetDriverOwnOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverOwnOrdersQuery creates a query for a driver's orders of today.
func NewGetDriverOwnOrdersQuery(driverID kernel.UUID) (GetDriverOwnOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOwnOrdersQuery{}, err
	}

	return GetDriverOwnOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOwnOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOwnOrdersQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver.
func (q GetDriverOwnOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}
