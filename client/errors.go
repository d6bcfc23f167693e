package client

import "fmt"

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrUnknown is an unknown error.
	ErrUnknown ErrorCode = iota
	// ErrBadRequest is returned for invalid requests.
	ErrBadRequest
	// ErrRateLimited is returned when rate limited by the server.
	ErrRateLimited
	// ErrNotFound is returned when a share doesn't exist, expired, or was
	// already redeemed.
	ErrNotFound
	// ErrServer is returned for server-side errors.
	ErrServer
)

// Error represents an error from the passgen API.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("passgen: %s", e.Message)
}

// IsNotFound returns true if the error indicates the share was not found
// (or was already redeemed).
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrNotFound
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrRateLimited
	}
	return false
}

// IsBadRequest returns true if the error indicates an invalid request.
func IsBadRequest(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrBadRequest
	}
	return false
}
