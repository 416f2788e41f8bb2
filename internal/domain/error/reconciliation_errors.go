// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Reconciliation domain errors.
var (
	// ErrInvalidAmount is returned when a raw amount cannot be normalized to a
	// finite non-negative decimal.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDate is returned when a raw date cannot be parsed in any of the
	// accepted formats.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidConfig is returned when a matching configuration update violates
	// its invariants. The prior configuration is kept.
	ErrInvalidConfig = errors.New("invalid matching configuration")

	// ErrInvalidInput is returned when the reconciliation call received a
	// malformed (not merely empty) argument.
	ErrInvalidInput = errors.New("invalid reconciliation input")
)

// ReconciliationErrorCode defines error codes for reconciliation errors.
// Format: RCN-XXYYYY where XX is category and YYYY is specific error.
type ReconciliationErrorCode string

const (
	// Normalization errors (01XXXX)
	ErrCodeInvalidAmount ReconciliationErrorCode = "RCN-010001"
	ErrCodeInvalidDate   ReconciliationErrorCode = "RCN-010002"

	// Configuration errors (02XXXX)
	ErrCodeInvalidWeights    ReconciliationErrorCode = "RCN-020001"
	ErrCodeNegativeTolerance ReconciliationErrorCode = "RCN-020002"
	ErrCodeScoreOutOfRange   ReconciliationErrorCode = "RCN-020003"

	// Input errors (03XXXX)
	ErrCodeInvalidInput ReconciliationErrorCode = "RCN-030001"

	// Internal errors (99XXXX)
	ErrCodeReconciliationInternal ReconciliationErrorCode = "RCN-990001"
)

// ReconciliationError represents a reconciliation error with code and message.
type ReconciliationError struct {
	Code    ReconciliationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// NewReconciliationError creates a new ReconciliationError with the given code and message.
func NewReconciliationError(code ReconciliationErrorCode, message string, err error) *ReconciliationError {
	return &ReconciliationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
