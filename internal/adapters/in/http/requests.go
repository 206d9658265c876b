package http

import "eats/internal/core/domain/model/restaurant"

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// CreateRestaurantRequest is the body of POST /api/v1/restaurants.
type CreateRestaurantRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddDishRequest is the body of POST /api/v1/restaurants/:restaurantId/dishes.
type AddDishRequest struct {
	Name    string              `json:"name"`
	Price   int64               `json:"price"`
	Options []restaurant.Option `json:"options,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	RestaurantID string                   `json:"restaurantId"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested line of a new order.
type CreateOrderItemRequest struct {
	DishID     string                      `json:"dishId"`
	Selections []restaurant.SelectedOption `json:"selections,omitempty"`
}

// EditOrderStatusRequest is the body of PATCH /api/v1/orders/:orderId/status.
type EditOrderStatusRequest struct {
	Status string `json:"status"`
}
