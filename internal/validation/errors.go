package validation

import "errors"

// ValidationError is the only error kind raised for invalid input. Its message is
// meant to be shown to the caller as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func New(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err, or any error it wraps, is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
