// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidExpenseDate is returned when the expense date is invalid.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrEmptyExpenseDescription is returned when the expense description is empty.
	ErrEmptyExpenseDescription = errors.New("expense description cannot be empty")

	// ErrEmptyPaymentMethod is returned when the payment method is empty.
	ErrEmptyPaymentMethod = errors.New("payment method cannot be empty")

	// ErrInvalidInstallments is returned when the installment fields are inconsistent.
	ErrInvalidInstallments = errors.New("invalid installment fields")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount    ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseDate      ExpenseErrorCode = "EXP-010002"
	ErrCodeEmptyExpenseDescription ExpenseErrorCode = "EXP-010003"
	ErrCodeEmptyPaymentMethod      ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidInstallments     ExpenseErrorCode = "EXP-010005"
	ErrCodeExpenseNotFound         ExpenseErrorCode = "EXP-010006"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternal ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
