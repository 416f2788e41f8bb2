// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a user-recorded expense eligible for statement matching.
// For installment purchases, Amount holds the per-installment value that is
// expected to appear on a statement, not the total purchase amount, and Date
// holds the installment due date.
type Expense struct {
	ID                uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Date              time.Time
	PaymentMethod     string
	InstallmentNumber *int
	InstallmentTotal  *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	description string,
	amount decimal.Decimal,
	date time.Time,
	paymentMethod string,
	installmentNumber *int,
	installmentTotal *int,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:                uuid.New(),
		Description:       description,
		Amount:            amount,
		Date:              date,
		PaymentMethod:     paymentMethod,
		InstallmentNumber: installmentNumber,
		InstallmentTotal:  installmentTotal,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
