package domain

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies why a page fetch failed.
type FetchErrorKind int

const (
	// FetchErrorTransport means the request never produced a response.
	FetchErrorTransport FetchErrorKind = iota
	// FetchErrorStatus means the server answered with a non-2xx status.
	FetchErrorStatus
	// FetchErrorDecode means the response body was not a valid search result.
	FetchErrorDecode
)

// String returns the string representation of the kind.
func (k FetchErrorKind) String() string {
	switch k {
	case FetchErrorTransport:
		return "transport"
	case FetchErrorStatus:
		return "status"
	case FetchErrorDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is returned when a page of results could not be loaded.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int // Set for FetchErrorStatus
	Err        error
}

// NewTransportError wraps a network-level failure.
func NewTransportError(err error) *FetchError {
	return &FetchError{Kind: FetchErrorTransport, Err: err}
}

// NewStatusError records a non-success HTTP status.
func NewStatusError(status int, err error) *FetchError {
	return &FetchError{Kind: FetchErrorStatus, StatusCode: status, Err: err}
}

// NewDecodeError wraps a malformed response body failure.
func NewDecodeError(err error) *FetchError {
	return &FetchError{Kind: FetchErrorDecode, Err: err}
}

// Error returns a short message suitable for display.
func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchErrorStatus:
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	case FetchErrorDecode:
		return "Received an invalid response from the server"
	default:
		if e.Err != nil {
			return fmt.Sprintf("Network error: %v", e.Err)
		}
		return "Network error"
	}
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError returns err as a *FetchError, wrapping anything else as a
// transport failure.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return NewTransportError(err)
}
