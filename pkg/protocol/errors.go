package protocol

import (
	"errors"
	"fmt"
)

// ErrorCode represents a standardized error class for transport failures.
type ErrorCode string

// Transport error classes.
const (
	// ErrCodeNetwork indicates the connection could not be established.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeHTTP indicates the server answered with a non-2xx status.
	ErrCodeHTTP ErrorCode = "HTTP_ERROR"
)

// Fixed user-facing messages for connection-level failures.
const (
	networkErrorMessage = "Failed to establish connection, check your internet settings and try again"
	timeoutErrorMessage = "Connection timed out"
)

// TransportError represents a terminal failure of one of the two API
// calls. No transport failure is ever retried; callers propagate the
// error to the top-level dispatcher which turns it into an exit code.
type TransportError struct {
	Code       ErrorCode
	Message    string
	StatusCode int // HTTP status, only set for ErrCodeHTTP
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return e.Message
}

// NewNetworkError creates a connection-failure error with the fixed
// connectivity message.
func NewNetworkError() *TransportError {
	return &TransportError{Code: ErrCodeNetwork, Message: networkErrorMessage}
}

// NewTimeoutError creates a timeout error with the fixed timeout message.
func NewTimeoutError() *TransportError {
	return &TransportError{Code: ErrCodeTimeout, Message: timeoutErrorMessage}
}

// NewHTTPError creates an error for a non-2xx response.
func NewHTTPError(statusCode int, status string) *TransportError {
	return &TransportError{
		Code:       ErrCodeHTTP,
		Message:    fmt.Sprintf("request failed with status %s", status),
		StatusCode: statusCode,
	}
}

// IsTransportError reports whether err is (or wraps) a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ExitCode maps an error returned by the workflow to a process exit
// code: 0 for success (including the no-flights and declined-booking
// outcomes, which are not errors), 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
