package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a booking session id does not resolve
// or the session has expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError reports a rejected booking submission. Validation failures
// block the pipeline before any side effect runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidationError reports whether err is a submission validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
