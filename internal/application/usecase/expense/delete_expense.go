package expense

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for deleting an expense.
type DeleteExpenseInput struct {
	ID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	expenseCache adapter.ExpenseCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	expenseCache adapter.ExpenseCache,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo:  expenseRepo,
		expenseCache: expenseCache,
	}
}

// Execute deletes an expense and drops the cached candidate list for its
// payment method.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				err,
			)
		}
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternal,
			"failed to load expense",
			err,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternal,
			"failed to delete expense",
			err,
		)
	}

	if uc.expenseCache != nil {
		key := adapter.ExpenseCacheKey(expense.PaymentMethod)
		if err := uc.expenseCache.Invalidate(ctx, key); err != nil {
			slog.Warn("Expense cache invalidation failed", "key", key, "error", err)
		}
	}

	return nil
}
