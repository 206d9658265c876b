// Package restaurantrepo persists restaurant and dish aggregates through GORM.
// Dish options are stored as a JSON document since they are read and written
// only as part of the dish.
package restaurantrepo

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"type:varchar(255)"`
	Latitude  float64
	Longitude float64
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents the database structure for persisting dishes.
type DishDTO struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID           `gorm:"type:uuid;index"`
	Name         string              `gorm:"type:varchar(255)"`
	Price        int64
	Options      []restaurant.Option `gorm:"serializer:json;type:jsonb"`
}

// TableName overrides GORM's default naming to use "dishes".
func (DishDTO) TableName() string {
	return "dishes"
}

// fromDomain converts a restaurant aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Name:      aggregate.Name(),
		Latitude:  aggregate.Position().Latitude(),
		Longitude: aggregate.Position().Longitude(),
	}
}

// toDomain reconstructs a restaurant aggregate from its database representation.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	position, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, ownerID, dto.Name, position)
}

// dishFromDomain converts a dish aggregate to its database representation.
func dishFromDomain(dish *restaurant.Dish) DishDTO {
	return DishDTO{
		ID:           dish.ID().Bytes(),
		RestaurantID: dish.RestaurantID().Bytes(),
		Name:         dish.Name(),
		Price:        dish.Price(),
		Options:      dish.Options(),
	}
}

// dishToDomain reconstructs a dish aggregate from its database representation.
func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreDish(id, restaurantID, dto.Name, dto.Price, dto.Options)
}
