package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusReason is the machine-readable kind of a gateway failure.
type StatusReason string

const (
	// StatusReasonInvalidFilter A caller-supplied filter value failed local validation
	StatusReasonInvalidFilter StatusReason = "InvalidFilter"
	// StatusReasonInvalidTenant A file operation was attempted without a usable tenant id
	StatusReasonInvalidTenant StatusReason = "InvalidTenant"
	// StatusReasonUnauthorized The credential was missing or rejected by the upstream service
	StatusReasonUnauthorized StatusReason = "Unauthorized"
	// StatusReasonForbidden The credential is valid but not allowed to access the resource
	StatusReasonForbidden StatusReason = "Forbidden"
	// StatusReasonNotFound The requested resource does not exist upstream
	StatusReasonNotFound StatusReason = "NotFound"
	// StatusReasonRateLimited The upstream service rejected the call due to rate limiting
	StatusReasonRateLimited StatusReason = "RateLimited"
	// StatusReasonUpstreamTimeout The upstream call did not complete within the configured deadline
	StatusReasonUpstreamTimeout StatusReason = "UpstreamTimeout"
	// StatusReasonUpstreamUnavailable The upstream service could not be reached after bounded retries
	StatusReasonUpstreamUnavailable StatusReason = "UpstreamUnavailable"
	// StatusReasonUpstreamError The upstream service returned an unexpected status
	StatusReasonUpstreamError StatusReason = "UpstreamError"
	// StatusReasonStreamInterrupted A download failed after bytes were already delivered to the caller
	StatusReasonStreamInterrupted StatusReason = "StreamInterrupted"
	// StatusReasonUnknown Any failure not covered by the taxonomy
	StatusReasonUnknown StatusReason = "Unknown"
)

const StatusFailure = "Failure"

// Status describes a failed operation in the caller-facing response body.
type Status struct {
	Status  string       `json:"status"`
	Reason  StatusReason `json:"reason"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
}

type APIStatus interface {
	Status() *Status
}

type StatusError struct {
	ErrStatus Status
}

var _ error = &StatusError{}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return e.ErrStatus.Message
}

// Status implements the APIStatus interface.
func (e *StatusError) Status() *Status {
	return &e.ErrStatus
}

func newStatusError(reason StatusReason, code int, message string) *StatusError {
	return &StatusError{
		ErrStatus: Status{
			Status:  StatusFailure,
			Reason:  reason,
			Code:    code,
			Message: message,
		},
	}
}

// NewInvalidFilter returns a validation failure for a filter parameter,
// listing the accepted values so the caller can self-correct.
func NewInvalidFilter(param, value string, accepted []string) *StatusError {
	message := fmt.Sprintf("invalid %s %q", param, value)
	if len(accepted) > 0 {
		message = fmt.Sprintf("%s, accepted values: %s", message, strings.Join(accepted, ", "))
	}
	return newStatusError(StatusReasonInvalidFilter, http.StatusBadRequest, message)
}

// NewInvalidFilterMessage returns a validation failure with a caller-provided message.
func NewInvalidFilterMessage(message string) *StatusError {
	return newStatusError(StatusReasonInvalidFilter, http.StatusBadRequest, message)
}

func NewInvalidTenant(tenantID string) *StatusError {
	if tenantID == "" {
		return newStatusError(StatusReasonInvalidTenant, http.StatusBadRequest, "job record carries no tenant id")
	}
	return newStatusError(StatusReasonInvalidTenant, http.StatusBadRequest, fmt.Sprintf("malformed tenant id %q", tenantID))
}

func NewUnauthorized(message string) *StatusError {
	return newStatusError(StatusReasonUnauthorized, http.StatusUnauthorized, message)
}

func NewForbidden(message string) *StatusError {
	return newStatusError(StatusReasonForbidden, http.StatusForbidden, message)
}

func NewNotFound(kind, name string) *StatusError {
	return newStatusError(StatusReasonNotFound, http.StatusNotFound, fmt.Sprintf("%s %s not found", kind, name))
}

func NewRateLimited(target string) *StatusError {
	return newStatusError(StatusReasonRateLimited, http.StatusBadGateway, fmt.Sprintf("%s rejected the request due to rate limiting", target))
}

func NewUpstreamTimeout(target string) *StatusError {
	return newStatusError(StatusReasonUpstreamTimeout, http.StatusGatewayTimeout, fmt.Sprintf("%s did not respond within the configured deadline", target))
}

func NewUpstreamUnavailable(target string, err error) *StatusError {
	return newStatusError(StatusReasonUpstreamUnavailable, http.StatusBadGateway, fmt.Sprintf("%s is unavailable: %v", target, err))
}

func NewUpstreamError(target string, statusCode int, upstreamMessage string) *StatusError {
	message := fmt.Sprintf("%s request failed with status %d", target, statusCode)
	if upstreamMessage != "" {
		message = fmt.Sprintf("%s: %s", message, upstreamMessage)
	}
	return newStatusError(StatusReasonUpstreamError, http.StatusBadGateway, message)
}

func NewStreamInterrupted(filename string, err error) *StatusError {
	return newStatusError(StatusReasonStreamInterrupted, http.StatusBadGateway, fmt.Sprintf("download of %s interrupted: %v", filename, err))
}

func NewUnknown(err error) *StatusError {
	return newStatusError(StatusReasonUnknown, http.StatusInternalServerError, err.Error())
}

// NewFromError funnels any error into a StatusError. Context deadline errors
// map to UpstreamTimeout since outbound calls are the only suspension points.
func NewFromError(err error) *StatusError {
	var statusError *StatusError
	switch {
	case errors.As(err, &statusError):
		return statusError
	case errors.Is(err, context.DeadlineExceeded):
		return NewUpstreamTimeout("upstream service")
	default:
		return NewUnknown(err)
	}
}

// ReasonForError returns the taxonomy reason carried by err, or Unknown.
func ReasonForError(err error) StatusReason {
	var apiStatus APIStatus
	if errors.As(err, &apiStatus) {
		return apiStatus.Status().Reason
	}
	return StatusReasonUnknown
}

// IsNotFound reports whether err is a NotFound gateway error.
func IsNotFound(err error) bool {
	return ReasonForError(err) == StatusReasonNotFound
}
