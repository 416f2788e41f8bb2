package expense

import (
	"context"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListExpensesInput represents the filter for listing expenses. All fields are
// optional; an empty filter lists everything.
type ListExpensesInput struct {
	PaymentMethod string
	From          *time.Time
	To            *time.Time
}

// ListExpensesOutput represents the listed expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists expenses matching the filter, ordered by date ascending.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		PaymentMethod: input.PaymentMethod,
		From:          input.From,
		To:            input.To,
	})
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternal,
			"failed to list expenses",
			err,
		)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
