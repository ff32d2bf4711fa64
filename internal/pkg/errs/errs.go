package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each concrete error type
// below unwraps to exactly one of these.
var (
	ErrObjectNotFound      = fmt.Errorf("object not found")
	ErrValueIsInvalid      = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange   = fmt.Errorf("value is out of range")
	ErrValueIsRequired     = fmt.Errorf("value is required")
	ErrPricingIncomplete   = fmt.Errorf("pricing incomplete")
	ErrPreCheckoutRejected = fmt.Errorf("pre-checkout rejected")
	ErrPaymentProcessing   = fmt.Errorf("payment processing failed")
)

// sanitize strips newlines out of formatted values so a single error always
// renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier, e.g. no order exists for a session.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PricingIncompleteError indicates that pricing was invoked before every field
// it depends on was collected. Correct stage sequencing makes this unreachable,
// so it is treated as a contract violation rather than user error.
type PricingIncompleteError struct {
	ParamName string
	Cause     error
}

func NewPricingIncompleteError(paramName string) *PricingIncompleteError {
	return &PricingIncompleteError{ParamName: paramName}
}

func NewPricingIncompleteErrorWithCause(paramName string, cause error) *PricingIncompleteError {
	return &PricingIncompleteError{ParamName: paramName, Cause: cause}
}

func (e *PricingIncompleteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPricingIncomplete, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPricingIncomplete, e.ParamName)
}

func (e *PricingIncompleteError) Unwrap() error {
	return ErrPricingIncomplete
}

// PreCheckoutRejectedError indicates that a pre-checkout query could not be
// matched to a payable order. The Reason is surfaced verbatim to the payment
// provider.
type PreCheckoutRejectedError struct {
	SessionID any
	Reason    string
}

func NewPreCheckoutRejectedError(sessionID any, reason string) *PreCheckoutRejectedError {
	return &PreCheckoutRejectedError{SessionID: sessionID, Reason: reason}
}

func (e *PreCheckoutRejectedError) Error() string {
	return fmt.Sprintf("%s: session is: %v, reason is: %s", ErrPreCheckoutRejected, e.SessionID, e.Reason)
}

func (e *PreCheckoutRejectedError) Unwrap() error {
	return ErrPreCheckoutRejected
}

// PaymentProcessingError wraps any failure on the payment finalization path.
// The Cause carries the raw error that is forwarded to the operator alert.
type PaymentProcessingError struct {
	SessionID any
	Cause     error
}

func NewPaymentProcessingError(sessionID any, cause error) *PaymentProcessingError {
	return &PaymentProcessingError{SessionID: sessionID, Cause: cause}
}

func (e *PaymentProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: session is: %v (cause: %s)", ErrPaymentProcessing, e.SessionID, e.Cause)
	}
	return fmt.Sprintf("%s: session is: %v", ErrPaymentProcessing, e.SessionID)
}

func (e *PaymentProcessingError) Unwrap() error {
	return ErrPaymentProcessing
}
