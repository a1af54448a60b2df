// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For lifecycle operations invoked from a disallowed state
//   - UnauthorizedError: For operations invoked by an actor that is not permitted
//   - ConflictError: For optimistic concurrency check failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// InvalidTransitionError and UnauthorizedError carry distinct messages so that a
// rejection caused by the record's state is never reported as a permission problem,
// and vice versa. User interfaces rely on that distinction.
package errs
