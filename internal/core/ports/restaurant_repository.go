package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants and dishes.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// AddDish persists a new dish for a restaurant.
	AddDish(ctx context.Context, dish *restaurant.Dish) error

	// GetDish retrieves a dish by its unique identifier,
	// including its declared options.
	GetDish(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error)
}
