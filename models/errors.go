package models

import "errors"

// ErrNotFound is returned by the store when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationKind classifies why a field value was rejected.
type ValidationKind string

const (
	KindMissingField     ValidationKind = "missing_field"
	KindUniqueness       ValidationKind = "uniqueness_violation"
	KindLengthExceeded   ValidationKind = "length_exceeded"
	KindInvalidReference ValidationKind = "invalid_reference"
	KindInvalidValue     ValidationKind = "invalid_value"
)

// ValidationError is the single failure type produced by field validation.
// Message is the client-facing reason, carried verbatim into the 422 body.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError; the store uses it to translate
// database-level constraint violations into the same taxonomy the field rules
// produce.
func NewValidationError(kind ValidationKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func newValidationError(kind ValidationKind, field, message string) *ValidationError {
	return NewValidationError(kind, field, message)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
