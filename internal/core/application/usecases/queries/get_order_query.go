package queries

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s: %s, total %.2f\n", result.ID, result.Status, result.TotalAmount)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ItemResponse represents one line item on an order read model.
type ItemResponse struct {
	ID          kernel.UUID
	ProductName string
	Quantity    int
	Price       float64
	Subtotal    float64
}

// OrderResponse represents the order read model returned by the order queries.
// Status carries the wire value ("PENDING", "SHIPPED", ...). TotalAmount is the
// sum of quantity times price across all items.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerName  string
	CustomerEmail string
	Status        string
	TotalAmount   float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []ItemResponse
}
