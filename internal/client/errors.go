package client

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Argument validation failures, detected before any request is made.
	KindMissingArgument   Kind = "MISSING_ARGUMENT"
	KindUnknownArgument   Kind = "UNKNOWN_ARGUMENT"
	KindMalformedArgument Kind = "MALFORMED_ARGUMENT"
	KindDuplicateArgument Kind = "DUPLICATE_ARGUMENT"
	KindValueOutOfRange   Kind = "VALUE_OUT_OF_RANGE"
	KindLengthOutOfRange  Kind = "LENGTH_OUT_OF_RANGE"
	KindLineLimitExceeded Kind = "LINE_LIMIT_EXCEEDED"

	// HTTP-level failures.
	KindNotFound           Kind = "NOT_FOUND"
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindTransport          Kind = "TRANSPORT_ERROR"
)

// ArgumentError reports an argument-schema violation. The offending
// argument, its value and the violated expectation are retained for
// diagnostics.
type ArgumentError struct {
	Kind     Kind
	Endpoint string
	Argument string
	Value    any
	Expected string // expected type or range, human readable
}

func (e *ArgumentError) Error() string {
	s := fmt.Sprintf("%s: %s: argument %q", e.Kind, e.Endpoint, e.Argument)
	if e.Value != nil {
		s += fmt.Sprintf("=%v", e.Value)
	}
	if e.Expected != "" {
		s += " (expected " + e.Expected + ")"
	}
	return s
}

// APIError reports an HTTP-level failure from the remote service.
type APIError struct {
	Kind     Kind
	Endpoint string
	Status   int
	Body     string
	Err      error // underlying transport error, if any
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: %s: status=%d", e.Kind, e.Endpoint, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind from err, unwrapping as needed.
// Returns an empty Kind for errors not produced by this package.
func KindOf(err error) Kind {
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	var pe *APIError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
