package queries

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, with an optional exact
// status filter.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching order read models, each with
// its line items attached. Results are sorted by creation time, oldest first, with
// the id as a tie breaker. A filter that matches nothing yields an empty slice,
// not an error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_name,
			customer_email,
			status,
			created_at,
			updated_at
		FROM orders
	`
	var args []any
	if status, ok := query.StatusFilter(); ok {
		sql += ` WHERE status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY created_at, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var response OrderResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.CustomerName,
			&response.CustomerEmail,
			&response.Status,
			&response.CreatedAt,
			&response.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, total, itemsErr := loadItems(ctx, h.db, orders[i].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		orders[i].Items = items
		orders[i].TotalAmount = total
	}

	return orders, nil
}
