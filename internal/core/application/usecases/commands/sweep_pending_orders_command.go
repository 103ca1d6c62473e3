package commands

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

var (
	ErrSweepPendingOrdersCommandIsNotConstructed = errors.New(
		"SweepPendingOrdersCommand must be created via NewSweepPendingOrdersCommand constructor",
	)
)

// SweepPendingOrdersCommand triggers promotion of all PENDING orders to PROCESSING.
// This batch operation is side-effect only and idempotent: once no PENDING orders
// remain, running it again changes nothing. Orders in any other status are never
// touched.
//
// Example:
//
//	cmd := NewSweepPendingOrdersCommand()
//	handler := NewSweepPendingOrdersCommandHandler(uowFactory)
//
//	// Run periodically from the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("sweep failed: %v", err)
//	}
type SweepPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepPendingOrdersCommand creates a command to promote pending orders.
// This is a parameterless command that processes the whole pending set.
func NewSweepPendingOrdersCommand() SweepPendingOrdersCommand {
	return SweepPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepPendingOrdersCommandIsNotConstructed if validation fails.
func (c *SweepPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepPendingOrdersCommandIsNotConstructed)
}
