// Package orderrepo persists order aggregates through GORM. An order and its
// items are written together; item rows are immutable after creation, matching
// the domain rule that line totals are frozen.
package orderrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Status       string     `gorm:"type:varchar(16);index"`
	Total        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. The customer's selections
// are stored as a JSON document alongside the frozen total.
type OrderItemDTO struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID                   `gorm:"type:uuid;index"`
	DishID     uuid.UUID                   `gorm:"type:uuid"`
	DishName   string                      `gorm:"type:varchar(255)"`
	Selections []restaurant.SelectedOption `gorm:"serializer:json;type:jsonb"`
	Total      int64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// including all item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			DishID:     item.DishID().Bytes(),
			DishName:   item.DishName(),
			Selections: item.Selections(),
			Total:      item.Total(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		DriverID:     driverID,
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total(),
		Items:        items,
	}
}

// toDomain reconstructs an order aggregate with its items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, restaurantID, customerID, driverID, status, items, dto.Total)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, dishID, dto.DishName, dto.Selections, dto.Total)
}
