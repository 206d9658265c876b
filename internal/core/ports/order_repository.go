package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with all its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate (status, driver).
	// Items are frozen at creation and never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AssignDriver atomically assigns a driver to an unassigned order.
	// The update is conditional on the driver column being unset, so of two
	// concurrent calls for the same order exactly one succeeds; the loser
	// receives a Conflict error. Returns NotFound if the order does not exist.
	AssignDriver(ctx context.Context, orderID, driverID kernel.UUID) error

	// GetAllPendingBefore retrieves orders still in Pending status that were
	// created before the given instant. Used by the reminder job.
	GetAllPendingBefore(ctx context.Context, createdBefore time.Time) ([]*order.Order, error)
}
