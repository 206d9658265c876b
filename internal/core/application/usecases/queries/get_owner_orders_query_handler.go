package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnerOrdersQueryHandler lists a restaurant's orders with items eagerly loaded.
type GetOwnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerOrdersQueryHandler creates a handler for the restaurant orders query.
func NewGetOwnerOrdersQueryHandler(db *gorm.DB) GetOwnerOrdersQueryHandler {
	return GetOwnerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come newest first, each with its full
// item list.
func (h GetOwnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT id, restaurant_id, customer_id, driver_id, status, total, created_at
		FROM orders
		WHERE restaurant_id = ?`
	args := []any{query.RestaurantID().Bytes()}
	if len(query.Statuses()) > 0 {
		statuses := make([]string, 0, len(query.Statuses()))
		for _, status := range query.Statuses() {
			statuses = append(statuses, status.String())
		}
		sqlText += ` AND status IN (?)`
		args = append(args, statuses)
	}
	sqlText += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	for rows.Next() {
		order, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, GetOrderQueryResponse{OrderResponse: order})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, itemsErr := loadOrderItems(ctx, h.db, orders[i].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		orders[i].Items = items
	}

	return orders, nil
}
