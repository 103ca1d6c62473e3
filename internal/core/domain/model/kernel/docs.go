// Package kernel contains shared domain primitives used across aggregates.
//
// The package currently provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types carry no business rules of their own; they exist so aggregate
// packages do not depend on infrastructure libraries directly.
package kernel
