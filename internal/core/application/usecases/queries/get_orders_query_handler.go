package queries

import (
	"context"
	"database/sql"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders for a user, scoped by their role.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the order list query.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Clients see orders they placed, delivery users
// orders assigned to them, owners orders across all their restaurants.
// Results come newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows *sql.Rows
	var err error

	switch query.Role() {
	case user.Owner:
		sqlText := `
			SELECT o.id, o.restaurant_id, o.customer_id, o.driver_id, o.status, o.total, o.created_at
			FROM orders o
			JOIN restaurants r ON r.id = o.restaurant_id
			WHERE r.owner_id = ?`
		args := []any{query.UserID().Bytes()}
		if query.Status() != nil {
			sqlText += ` AND o.status = ?`
			args = append(args, query.Status().String())
		}
		sqlText += ` ORDER BY o.created_at DESC`
		rows, err = h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	case user.Delivery:
		rows, err = h.rowsByColumn(ctx, "driver_id", query)
	case user.Client:
		rows, err = h.rowsByColumn(ctx, "customer_id", query)
	default:
		// Role was validated in the constructor; nothing to return for unknown roles.
		return []OrderResponse{}, nil
	}
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

func (h GetOrdersQueryHandler) rowsByColumn(
	ctx context.Context, column string, query GetOrdersQuery,
) (*sql.Rows, error) {
	sqlText := `
		SELECT id, restaurant_id, customer_id, driver_id, status, total, created_at
		FROM orders
		WHERE ` + column + ` = ?`
	args := []any{query.UserID().Bytes()}
	if query.Status() != nil {
		sqlText += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	sqlText += ` ORDER BY created_at DESC`

	return h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
}

// scanOrderRow reads one order row in the common column order:
// id, restaurant_id, customer_id, driver_id, status, total, created_at.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, restaurantID, customerID uuid.UUID
	var driverID uuid.NullUUID
	var status string

	if err := rows.Scan(&id, &restaurantID, &customerID, &driverID, &status, &resp.Total, &resp.CreatedAt); err != nil {
		return OrderResponse{}, err
	}

	if err := fillOrderIdentifiers(&resp, id, restaurantID, customerID, driverID, status); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// fillOrderIdentifiers converts raw scanned columns into the response's
// kernel types.
func fillOrderIdentifiers(
	resp *OrderResponse,
	id, restaurantID, customerID uuid.UUID,
	driverID uuid.NullUUID,
	status string,
) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}
	resp.ID = orderID

	restID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return err
	}
	resp.RestaurantID = restID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return err
	}
	resp.CustomerID = custID

	if driverID.Valid {
		drvID, drvErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if drvErr != nil {
			return drvErr
		}
		resp.DriverID = &drvID
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return err
	}
	resp.Status = parsedStatus

	return nil
}
