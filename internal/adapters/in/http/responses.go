package http

import (
	"time"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/restaurant"
)

// ErrorResponse is the common error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse returns the identifier assigned to a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the wire form of one order.
type OrderResponse struct {
	ID           string              `json:"id"`
	RestaurantID string              `json:"restaurantId"`
	CustomerID   string              `json:"customerId"`
	DriverID     *string             `json:"driverId,omitempty"`
	Status       string              `json:"status"`
	Total        int64               `json:"total"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

// OrderItemResponse is the wire form of one order line.
type OrderItemResponse struct {
	ID         string                      `json:"id"`
	DishID     string                      `json:"dishId"`
	DishName   string                      `json:"dishName"`
	Selections []restaurant.SelectedOption `json:"selections,omitempty"`
	Total      int64                       `json:"total"`
}

// DriverOrderResponse is one driver feed entry with the restaurant's position
// and, when known, the distance to it in meters.
type DriverOrderResponse struct {
	OrderResponse
	RestaurantLatitude  float64  `json:"restaurantLatitude"`
	RestaurantLongitude float64  `json:"restaurantLongitude"`
	DistanceMeters      *float64 `json:"distanceMeters,omitempty"`
}

func orderFromQuery(resp queries.OrderResponse) OrderResponse {
	out := OrderResponse{
		ID:           resp.ID.String(),
		RestaurantID: resp.RestaurantID.String(),
		CustomerID:   resp.CustomerID.String(),
		Status:       resp.Status.String(),
		Total:        resp.Total,
		CreatedAt:    resp.CreatedAt,
	}
	if resp.DriverID != nil {
		driverID := resp.DriverID.String()
		out.DriverID = &driverID
	}
	return out
}

func itemsFromQuery(items []queries.ItemResponse) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItemResponse{
			ID:         item.ID.String(),
			DishID:     item.DishID.String(),
			DishName:   item.DishName,
			Selections: item.Selections,
			Total:      item.Total,
		})
	}
	return out
}
