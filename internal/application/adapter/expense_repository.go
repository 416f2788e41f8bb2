// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseFilter narrows an expense listing. PaymentMethod is matched exactly;
// a nil From/To leaves that bound open.
type ExpenseFilter struct {
	PaymentMethod string
	From          *time.Time
	To            *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create stores a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, ordered by date
	// ascending then creation time, so candidate order is stable across runs.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Delete removes an expense by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListPaymentMethods returns the distinct payment methods in use.
	ListPaymentMethods(ctx context.Context) ([]string, error)
}
