package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler serves the driver order feed. The distance
// predicate runs in SQL so the database does the filtering, not the process:
// the great-circle distance between the driver and each restaurant is computed
// with the spherical law of cosines, which matches the haversine result for
// the distances involved.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for the driver feed query.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query. Only orders without a driver count, restaurants
// strictly within pickup range qualify, and results come newest first.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]DriverOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]string, 0, len(query.Statuses()))
	for _, status := range query.Statuses() {
		statuses = append(statuses, status.String())
	}

	lat := query.Position().Latitude()
	lng := query.Position().Longitude()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, restaurant_id, customer_id, driver_id, status, total, created_at,
		       latitude, longitude, distance
		FROM (
			SELECT o.id, o.restaurant_id, o.customer_id, o.driver_id, o.status, o.total, o.created_at,
			       r.latitude, r.longitude,
			       6371000 * acos(least(1.0,
			           cos(radians(?)) * cos(radians(r.latitude)) * cos(radians(r.longitude) - radians(?)) +
			           sin(radians(?)) * sin(radians(r.latitude))
			       )) AS distance
			FROM orders o
			JOIN restaurants r ON r.id = o.restaurant_id
			WHERE o.driver_id IS NULL
			  AND o.status IN (?)
		) AS nearby
		WHERE distance < ?
		ORDER BY created_at DESC
	`, lat, lng, lat, statuses, MaxPickupDistanceMeters).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]DriverOrderResponse, 0)
	for rows.Next() {
		var resp DriverOrderResponse
		var id, restaurantID, customerID uuid.UUID
		var driverID uuid.NullUUID
		var status string
		var latitude, longitude float64

		err = rows.Scan(
			&id, &restaurantID, &customerID, &driverID, &status, &resp.Total, &resp.CreatedAt,
			&latitude, &longitude, &resp.DistanceMeters,
		)
		if err != nil {
			return nil, err
		}

		if err = fillOrderIdentifiers(&resp.OrderResponse, id, restaurantID, customerID, driverID, status); err != nil {
			return nil, err
		}

		position, posErr := kernel.NewGeoPoint(latitude, longitude)
		if posErr != nil {
			return nil, posErr
		}
		resp.RestaurantPosition = position

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
