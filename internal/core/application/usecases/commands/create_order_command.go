package commands

import (
	"errors"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput is the caller-supplied description of one line item on a new order.
// Quantity and price are validated by the domain when the item is built, so the
// command accepts them as-is.
type ItemInput struct {
	ProductName string
	Quantity    int
	Price       float64
}

// CreateOrderCommand represents a request to create a new purchase order.
// The order always starts in PENDING status; the command deliberately carries no
// status field.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Jane Doe", "jane@example.com", []ItemInput{
//	    {ProductName: "Widget", Quantity: 2, Price: 10.0},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerEmail string
	items         []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates that customer name and email are present; line items may be empty.
func NewCreateOrderCommand(customerName, customerEmail string, items []ItemInput) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		items: items,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerName(customerName),
		command.setCustomerEmail(customerEmail),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the purchaser's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the purchaser's email address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Items returns the line item inputs for the new order.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}

	c.customerEmail = customerEmail
	return nil
}
