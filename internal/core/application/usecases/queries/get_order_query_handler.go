package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its line items straight from the
// database, bypassing the domain model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns an ObjectNotFoundError when no order exists under the given id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response OrderResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_email,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.CustomerName,
		&response.CustomerEmail,
		&response.Status,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	response.ID = orderID

	items, total, err := loadItems(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}
	response.Items = items
	response.TotalAmount = total

	return &response, nil
}

// loadItems reads the line items of one order, sorted by item id, and returns them
// together with the order total.
func loadItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]ItemResponse, float64, error) {
	items := make([]ItemResponse, 0)
	total := 0.0

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			quantity,
			price
		FROM items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ItemResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, 0, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, 0, idErr
		}
		item.ID = itemID
		item.Subtotal = float64(item.Quantity) * item.Price

		total += item.Subtotal
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
