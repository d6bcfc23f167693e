package passgen

import "fmt"

// ErrorCode represents the type of generation failure that occurred.
type ErrorCode int

const (
	// ErrUnknown is an unknown error.
	ErrUnknown ErrorCode = iota
	// ErrInvalidArgument is returned for bad input (non-positive length,
	// empty alphabet, min > max). Detected before any randomness is drawn.
	ErrInvalidArgument
	// ErrRandomnessExhausted is returned when the sampling attempt budget
	// ran out before enough in-range values were accepted. Under a healthy
	// entropy source this is astronomically unlikely; treat it as fatal.
	ErrRandomnessExhausted
	// ErrEntropySource is returned when crypto/rand itself failed. The
	// underlying error is available via errors.Unwrap.
	ErrEntropySource
	// ErrSelectionOutOfRange is returned when a selection index falls
	// outside the alphabet or the alphabet exceeds the constant-time
	// selection cap.
	ErrSelectionOutOfRange
)

// Error represents a failure from the passgen package.
type Error struct {
	Code    ErrorCode
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("passgen: %s", e.Message)
}

// Unwrap exposes the underlying cause, if any (set for ErrEntropySource).
func (e *Error) Unwrap() error {
	return e.cause
}

// IsInvalidArgument returns true if the error indicates bad caller input.
func IsInvalidArgument(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrInvalidArgument
	}
	return false
}

// IsRandomnessExhausted returns true if the error indicates the sampling
// attempt budget was exhausted.
func IsRandomnessExhausted(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrRandomnessExhausted
	}
	return false
}

// IsEntropyFailure returns true if the error came from the entropy source.
func IsEntropyFailure(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrEntropySource
	}
	return false
}

// IsSelectionOutOfRange returns true if the error indicates an index or
// alphabet outside what constant-time selection supports.
func IsSelectionOutOfRange(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrSelectionOutOfRange
	}
	return false
}
