package order

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
//
// The intended workflow is a forward-only pipeline:
//
//	PENDING ──> PROCESSING ──> SHIPPED ──> DELIVERED
//	   │
//	   └──> CANCELLED
//
// DELIVERED and CANCELLED are terminal states. Only the cancellation edge is
// enforced by the state machine (see Cancel); the status-override operation
// deliberately bypasses transition checks so operators can force-correct state
// (see Order.OverrideStatus).
//
// The string representations are the wire values exchanged with the API and
// stored in the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	// Pending orders are picked up by the periodic sweep and moved to Processing.
	Pending

	// Processing indicates the order has been accepted and is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal state.
	Delivered

	// Cancelled indicates the order was cancelled while still Pending. Terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses a wire value ("PENDING", "SHIPPED", ...) into a Status.
// Returns an error for anything that is not one of the five valid values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire value of the status ("PENDING", "PROCESSING", ...).
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered and Cancelled are the terminal states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Every other starting status fails: once an order is in progress or terminal it
// can no longer be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the current status is not Pending
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("only PENDING orders can be cancelled, current status is %s", s.String()),
		)
	}

	return Cancelled, nil
}
