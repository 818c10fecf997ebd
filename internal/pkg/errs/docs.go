// Package errs provides the standardized error types of the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for validation failures and for the order
// lifecycle error taxonomy:
//   - ObjectNotFoundError: a referenced order, product or user is absent (NotFound)
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - InvalidStateTransitionError: an operation attempted from a disallowed order status
//   - ReferencedEntityMissingError: a dangling reference found while hydrating an order
//   - UnknownUserError: the acting principal does not resolve to a user
//   - ErrEmptyOrder: an order created without items
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify errors with errors.Is
//
// All of these errors describe caller or data problems. None of them is transient and
// none is retried by the service.
package errs
