package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetOrdersInStatusQuery constructor",
	)
)

// GetOrdersQuery retrieves orders, optionally narrowed to a single status.
// Without a filter it returns every order in the store.
//
// Example:
//
//	query := NewGetOrdersQuery()                              // all orders
//	query, err := NewGetOrdersInStatusQuery(order.Pending)    // only PENDING
type GetOrdersQuery struct {
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query that retrieves all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersInStatusQuery creates a query that retrieves only the orders whose
// status exactly matches the given value.
func NewGetOrdersInStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the status filter and whether one is set.
func (q GetOrdersQuery) StatusFilter() (order.Status, bool) {
	return q.status, q.hasStatus
}
