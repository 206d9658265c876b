// Package queries contains read-only operations executed directly against the
// database. Queries bypass the domain aggregates and return lightweight
// response models, per the CQRS split: writes go through commands and the
// unit of work, reads go through raw SQL here.
package queries

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
)

// OrderResponse is the common read model for one order row.
type OrderResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID
	DriverID     *kernel.UUID
	Status       order.Status
	Total        int64
	CreatedAt    time.Time
}

// ItemResponse is the read model for one order line.
type ItemResponse struct {
	ID         kernel.UUID
	DishID     kernel.UUID
	DishName   string
	Selections []restaurant.SelectedOption
	Total      int64
}
