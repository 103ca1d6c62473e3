// Package order provides the domain model for purchase order management. It
// implements the Order aggregate root with exclusive line-item ownership and a
// status state machine for the order lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning customer identity, line items, and lifecycle
//   - Item: a product/quantity/price entry belonging to exactly one order
//   - Status: the lifecycle state with its transition rules
//
// Key business rules:
//   - Orders are always created in PENDING status; creation accepts no status
//   - The total amount is derived from the items and never stored
//   - Cancellation is only allowed while the order is PENDING
//   - The status-override path is deliberately unvalidated so operators can
//     force-correct state; it must not be "fixed" into a checked transition
//
// The package follows Domain-Driven Design principles, keeping fields private and
// funnelling every mutation through validated methods.
package order
