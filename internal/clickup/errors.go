// Package clickup implements the client and data model for the ClickUp REST API.
package clickup

// file: internal/clickup/errors.go

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel transport errors. Failed requests are marked with one of these so
// callers can distinguish a timeout from an unreachable upstream with
// errors.Is.
var (
	// ErrTimeout marks a request that exceeded the transport timeout.
	ErrTimeout = errors.New("clickup request timed out")
	// ErrUnreachable marks a DNS or connection failure.
	ErrUnreachable = errors.New("clickup unreachable")
)

// APIError is a non-2xx response from the ClickUp API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is ClickUp's machine error code (ECODE), when present.
	Code string
	// Detail is ClickUp's human-readable error string, when present.
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("clickup API error %d (%s): %s", e.StatusCode, e.Code, e.Detail)
	}
	return fmt.Sprintf("clickup API error %d", e.StatusCode)
}

// UserMessage maps the status code to a fixed human-readable message,
// appending the upstream-provided detail when available.
func (e *APIError) UserMessage() string {
	var msg string
	switch {
	case e.StatusCode == http.StatusBadRequest:
		msg = "ClickUp rejected the request as invalid"
	case e.StatusCode == http.StatusUnauthorized:
		msg = "Authentication with ClickUp failed. Check the API token"
	case e.StatusCode == http.StatusForbidden:
		msg = "Permission denied for this ClickUp resource"
	case e.StatusCode == http.StatusNotFound:
		msg = "The requested ClickUp resource was not found"
	case e.StatusCode == http.StatusTooManyRequests:
		msg = "Rate limited by ClickUp. Wait a moment and retry"
	case e.StatusCode >= 500:
		msg = "ClickUp reported a server error. Try again later"
	default:
		msg = fmt.Sprintf("ClickUp returned an unexpected status %d", e.StatusCode)
	}
	if e.Detail != "" {
		return msg + ": " + e.Detail
	}
	return msg + "."
}

// UserMessage converts any error from this package into the text payload
// surfaced at the tool boundary. Raw stack traces never reach the caller.
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.UserMessage()
	case errors.Is(err, ErrTimeout):
		return "The request to ClickUp timed out. Try again later."
	case errors.Is(err, ErrUnreachable):
		return "Could not reach ClickUp. Check connectivity and try again later."
	default:
		return fmt.Sprintf("Unexpected error talking to ClickUp: %v", err)
	}
}

// classifyTransportError marks a failed round-trip as a timeout or an
// unreachability failure.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Mark(err, ErrTimeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Mark(err, ErrTimeout)
	}
	return errors.Mark(err, ErrUnreachable)
}
