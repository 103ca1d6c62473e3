// Package errs provides standardized error types for the order management
// application. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: for when an object cannot be found
//   - ValueIsInvalidError: for when a value violates a business rule
//   - ValueIsRequiredError: for when a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// This standardized approach keeps error classification uniform across the API
// layer, the lifecycle commands, and the persistence adapters.
package errs
