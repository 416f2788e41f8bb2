// Package expense contains use cases for managing user-recorded expenses.
package expense

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for creating an expense.
type CreateExpenseInput struct {
	Description       string
	Amount            decimal.Decimal
	Date              time.Time
	PaymentMethod     string
	InstallmentNumber *int
	InstallmentTotal  *int
}

// CreateExpenseOutput represents the created expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	expenseCache adapter.ExpenseCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	expenseCache adapter.ExpenseCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		expenseCache: expenseCache,
	}
}

// Execute validates and stores a new expense, then drops the cached candidate
// list for its payment method so the next reconciliation sees it.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		strings.TrimSpace(input.Description),
		input.Amount.Round(2),
		input.Date.UTC().Truncate(24*time.Hour),
		strings.TrimSpace(input.PaymentMethod),
		input.InstallmentNumber,
		input.InstallmentTotal,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternal,
			"failed to create expense",
			err,
		)
	}

	uc.invalidateCache(ctx, expense.PaymentMethod)

	return &CreateExpenseOutput{Expense: expense}, nil
}

func (uc *CreateExpenseUseCase) invalidateCache(ctx context.Context, paymentMethod string) {
	if uc.expenseCache == nil {
		return
	}
	key := adapter.ExpenseCacheKey(paymentMethod)
	if err := uc.expenseCache.Invalidate(ctx, key); err != nil {
		slog.Warn("Expense cache invalidation failed", "key", key, "error", err)
	}
}

func validateCreateInput(input CreateExpenseInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyExpenseDescription,
			"expense description cannot be empty",
			domainerror.ErrEmptyExpenseDescription,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if input.Date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyPaymentMethod,
			"payment method cannot be empty",
			domainerror.ErrEmptyPaymentMethod,
		)
	}
	return validateInstallments(input.InstallmentNumber, input.InstallmentTotal)
}

// validateInstallments requires number and total together, both positive, with
// number within total.
func validateInstallments(number, total *int) error {
	if number == nil && total == nil {
		return nil
	}
	valid := number != nil && total != nil &&
		*number >= 1 && *total >= 1 && *number <= *total
	if !valid {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidInstallments,
			"installment number and total must both be set, positive, and consistent",
			domainerror.ErrInvalidInstallments,
		)
	}
	return nil
}
