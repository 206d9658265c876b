package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetDriverOwnOrdersQueryHandler lists a driver's orders touched today.
// "Today" is the local calendar day, midnight to midnight.
type GetDriverOwnOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOwnOrdersQueryHandler creates a handler for the driver day overview.
func NewGetDriverOwnOrdersQueryHandler(db *gorm.DB) GetDriverOwnOrdersQueryHandler {
	return GetDriverOwnOrdersQueryHandler{db: db}
}

// Handle executes the query, newest updates first.
func (h GetDriverOwnOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOwnOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, restaurant_id, customer_id, driver_id, status, total, created_at
		FROM orders
		WHERE driver_id = ?
		  AND updated_at >= ?
		  AND updated_at < ?
		ORDER BY updated_at DESC
	`, query.DriverID().Bytes(), dayStart, dayEnd).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
