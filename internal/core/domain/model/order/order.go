package order

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemNotOwned is returned by RemoveItem when the given item is not part of
	// the order's item collection.
	ErrItemNotOwned = errors.New("item does not belong to this order")

	// ErrIDAlreadyAssigned is returned by AssignID when the order already has a
	// store-assigned identifier. Order ids are immutable once set.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a customer purchase order. It is the aggregate root that owns a
// collection of line items and manages the order lifecycle from creation through
// status progression to delivery or cancellation.
//
// Order maintains these invariants:
//   - Status is always one of the five valid values and starts as Pending
//   - Every item in the collection points back at this order as its owner
//   - updatedAt never precedes createdAt
//   - The total amount is always derived from the items, never stored
//
// All status changes go through Cancel or OverrideStatus; nothing else mutates the
// status field.
type Order struct {
	// id is assigned by the store on first save and is immutable thereafter
	id kernel.UUID

	// customerName and customerEmail identify the purchaser (required, free-form)
	customerName  string
	customerEmail string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at construction; updatedAt changes on every mutation
	createdAt time.Time
	updatedAt time.Time

	// items is the ordered collection of line items this order exclusively owns
	items []*Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no items.
// Customer name and email are required; no further validation is applied to them.
// The order has no identifier until the store assigns one on first save.
//
// Attach line items with AddItem before or after saving.
func NewOrder(customerName, customerEmail string) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setCustomerEmail(customerEmail),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from persistence without re-running creation rules.
// The id, status, and timestamps must be the persisted values; the supplied items
// are attached with ownership set but without touching updatedAt.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerEmail string,
	status Status,
	createdAt, updatedAt time.Time,
	items []*Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order, err := NewOrder(customerName, customerEmail)
	if err != nil {
		return nil, err
	}

	order.id = id
	order.status = status
	order.createdAt = createdAt
	order.updatedAt = updatedAt

	for _, item := range items {
		item.owner = order
		order.items = append(order.items, item)
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory
// method. This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders without a store-assigned id never compare equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

// ID returns the order's store-assigned identifier. Zero until first save.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the purchaser's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the purchaser's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp. Never changes after construction.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; the items themselves are shared.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of quantity * price over all items.
// Pure derivation with no side effects; an empty order totals 0.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// AddItem appends the item to the order's collection and points its ownership at
// this order. If the item currently belongs to another order it is detached from
// that order first, so an item never has two owners.
func (o *Order) AddItem(item *Item) {
	if item == nil {
		return
	}

	if item.owner != nil && item.owner != o {
		// Ignore the not-owned error: the owner reference guarantees membership.
		_ = item.owner.RemoveItem(item)
	}

	item.owner = o
	o.items = append(o.items, item)
	o.touch()
}

// RemoveItem removes the item from the collection and clears its owner reference.
// Returns ErrItemNotOwned if the item is not part of this order; the collection is
// left unchanged in that case.
func (o *Order) RemoveItem(item *Item) error {
	for idx, owned := range o.items {
		if owned == item {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			item.owner = nil
			o.touch()
			return nil
		}
	}

	return ErrItemNotOwned
}

// Cancel moves the order to Cancelled.
//
// Only Pending orders can be cancelled; any other starting status fails with an
// invalid-transition error and leaves the order unmodified.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// OverrideStatus unconditionally overwrites the order's status with any valid
// status value, including transitions outside the forward pipeline (for example
// DELIVERED back to PENDING).
//
// This path intentionally performs no transition validation: it exists so
// operators can force-correct state, and downstream consumers rely on the
// unguarded behavior. Cancel remains the only validated transition.
func (o *Order) OverrideStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.touch()
	return nil
}

// AssignID sets the store-assigned identifier on first save.
// Used by the persistence adapter only; the id is immutable once set.
func (o *Order) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// touch records a mutation. updatedAt moves monotonically forward and never ends
// up before createdAt.
func (o *Order) touch() {
	now := time.Now().UTC()
	if now.Before(o.updatedAt) {
		return
	}
	o.updatedAt = now
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	o.customerEmail = customerEmail
	return nil
}
