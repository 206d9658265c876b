package queries

import (
	"context"
	"database/sql"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverOrderQueryHandler retrieves one order for the driver detail view.
type GetDriverOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrderQueryHandler creates a handler for the driver order detail query.
func NewGetDriverOrderQueryHandler(db *gorm.DB) GetDriverOrderQueryHandler {
	return GetDriverOrderQueryHandler{db: db}
}

// Handle executes the query. The distance is computed from the driver's
// position when one was supplied.
func (h GetDriverOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrderQuery,
) (GetDriverOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.restaurant_id, o.customer_id, o.driver_id, o.status, o.total, o.created_at,
		       r.name, r.latitude, r.longitude
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetDriverOrderQueryResponse
	var id, restaurantID, customerID uuid.UUID
	var driverID uuid.NullUUID
	var status string
	var latitude, longitude float64

	err := row.Scan(
		&id, &restaurantID, &customerID, &driverID, &status, &resp.Total, &resp.CreatedAt,
		&resp.RestaurantName, &latitude, &longitude,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDriverOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetDriverOrderQueryResponse{}, err
	}

	if err = fillOrderIdentifiers(&resp.OrderResponse, id, restaurantID, customerID, driverID, status); err != nil {
		return GetDriverOrderQueryResponse{}, err
	}

	position, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return GetDriverOrderQueryResponse{}, err
	}
	resp.RestaurantPosition = position

	if query.Position() != nil {
		distance, distErr := query.Position().DistanceTo(position)
		if distErr != nil {
			return GetDriverOrderQueryResponse{}, distErr
		}
		resp.DistanceMeters = &distance
	}

	return resp, nil
}
