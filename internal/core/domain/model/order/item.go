package order

import (
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// Item is a single product line within an order. Every item belongs to exactly one
// Order at any time; ownership is managed by Order.AddItem and Order.RemoveItem,
// never by the item itself. Items are not persisted independently of their order.
type Item struct {
	// id is assigned by the store on first save and is zero until then
	id kernel.UUID

	// productName identifies the purchased product (required)
	productName string

	// quantity is the number of units ordered (never negative)
	quantity int

	// price is the unit price (never negative)
	price float64

	// owner is the order this item currently belongs to (nil if detached)
	owner *Order
}

// NewItem creates a line item that is not yet attached to any order.
// Product name is required; quantity and price must not be negative.
// Attach the item to an order with Order.AddItem.
func NewItem(productName string, quantity int, price float64) (*Item, error) {
	item := &Item{}

	if err := item.setProductName(productName); err != nil {
		return nil, err
	}
	if err := item.setQuantity(quantity); err != nil {
		return nil, err
	}
	if err := item.setPrice(price); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a line item from persistence without re-running creation
// rules. The id must be the one the store assigned. Ownership is established by
// RestoreOrder attaching the item.
func RestoreItem(id kernel.UUID, productName string, quantity int, price float64) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(productName, quantity, price)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// ID returns the item's store-assigned identifier.
// Zero until the owning order has been saved.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the purchased product's name.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i *Item) Price() float64 {
	return i.price
}

// Owner returns the order this item currently belongs to.
// Returns nil if the item is not attached to any order.
func (i *Item) Owner() *Order {
	return i.owner
}

// Subtotal returns quantity * price. Zero quantity or price yields 0.
func (i *Item) Subtotal() float64 {
	return float64(i.quantity) * i.price
}

// AssignID sets the store-assigned identifier on first save.
// Used by the persistence adapter only; fails if an id is already assigned.
func (i *Item) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !i.id.IsZero() {
		return errs.NewValueIsInvalidError("item id is already assigned")
	}

	i.id = id
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}
