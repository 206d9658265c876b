package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order and checks the caller may see it.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for the single order query.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns NotFound when the user or the order does
// not exist and PermissionDenied when the order exists but is not visible to
// the caller.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	role, err := h.userRole(ctx, query.UserID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.restaurant_id, o.customer_id, o.driver_id, o.status, o.total, o.created_at,
		       r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var id, restaurantID, customerID, ownerID uuid.UUID
	var driverID uuid.NullUUID
	var status string
	var resp GetOrderQueryResponse

	err = row.Scan(&id, &restaurantID, &customerID, &driverID, &status, &resp.Total, &resp.CreatedAt, &ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = fillOrderIdentifiers(&resp.OrderResponse, id, restaurantID, customerID, driverID, status); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !mayViewOrder(role, query.UserID(), resp.OrderResponse, ownerID) {
		return GetOrderQueryResponse{}, errs.NewPermissionDeniedError("view order")
	}

	items, err := loadOrderItems(ctx, h.db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) userRole(ctx context.Context, userID kernel.UUID) (user.Role, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT role FROM users WHERE id = ?
	`, userID.Bytes()).Row()

	var roleStr string
	err := row.Scan(&roleStr)
	if errors.Is(err, sql.ErrNoRows) {
		return user.UnknownRole, errs.NewObjectNotFoundError("user", userID)
	}
	if err != nil {
		return user.UnknownRole, err
	}

	return user.RoleFromString(roleStr)
}

// loadOrderItems reads all lines of one order, ordered by line id for stable output.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]ItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, dish_id, dish_name, selections, total
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		item, scanErr := scanItemRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// scanItemRow reads one order line row in the column order:
// id, dish_id, dish_name, selections, total.
func scanItemRow(rows *sql.Rows) (ItemResponse, error) {
	var item ItemResponse
	var id, dishID uuid.UUID
	var selections []byte

	if err := rows.Scan(&id, &dishID, &item.DishName, &selections, &item.Total); err != nil {
		return ItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ItemResponse{}, err
	}
	item.ID = itemID

	parsedDishID, err := kernel.UUIDFromBytes(dishID[:])
	if err != nil {
		return ItemResponse{}, err
	}
	item.DishID = parsedDishID

	if len(selections) > 0 {
		var selected []restaurant.SelectedOption
		if err = json.Unmarshal(selections, &selected); err != nil {
			return ItemResponse{}, err
		}
		item.Selections = selected
	}

	return item, nil
}

// mayViewOrder mirrors the domain access policy on the read side, where only
// raw row data is available.
func mayViewOrder(role user.Role, userID kernel.UUID, o OrderResponse, ownerID uuid.UUID) bool {
	switch role {
	case user.Client:
		return o.CustomerID.IsEqual(userID)
	case user.Delivery:
		return o.DriverID != nil && o.DriverID.IsEqual(userID)
	case user.Owner:
		return ownerID == userID.Bytes()
	default:
		return false
	}
}
