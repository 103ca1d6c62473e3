package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items are always persisted together as one unit; the store
// assigns identifiers to aggregates that do not carry one yet.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// Assigns ids to the order and any items whose id is still unset.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order's scalar fields are updated and its item set is replaced in full,
	// so the stored items always mirror the aggregate exactly.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateAll applies Update semantics to a batch of orders in one call.
	// Used by the pending-order sweep; the batch applies atomically within the
	// surrounding unit of work.
	UpdateAll(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order aggregate by its unique identifier, items included.
	// Returns an errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order. Result ordering is unspecified.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders whose current status matches exactly.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
