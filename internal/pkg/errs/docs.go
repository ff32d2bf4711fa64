// Package errs provides standardized error types for the print-order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid (rejected user input)
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found (e.g. no order for a session)
//   - PricingIncompleteError: For when pricing is invoked before required fields are set
//   - PreCheckoutRejectedError: For pre-checkout queries that fail order correlation
//   - PaymentProcessingError: For failures while finalizing a payment
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application. The workflow treats the value errors
// as recoverable (re-prompt the same stage) and the payment errors as boundary
// errors that must always produce a user apology and an operator alert.
package errs
