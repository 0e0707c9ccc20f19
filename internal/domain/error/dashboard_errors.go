// Package error defines domain-specific errors for the dashboard service.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrStoreUnavailable is returned when the entity store cannot be reached or fails a query.
	ErrStoreUnavailable = errors.New("entity store unavailable")

	// ErrDeadlineExceeded is returned when the request deadline expires before the snapshot is built.
	ErrDeadlineExceeded = errors.New("dashboard request deadline exceeded")

	// ErrInvalidTimezone is returned when the configured business timezone cannot be loaded.
	ErrInvalidTimezone = errors.New("invalid business timezone")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeInvalidTimezone DashboardErrorCode = "DSH-010001"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
	ErrCodeStoreUnavailable       DashboardErrorCode = "DSH-990002"
	ErrCodeDeadlineExceeded       DashboardErrorCode = "DSH-990003"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
