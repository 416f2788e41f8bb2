package expense

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListPaymentMethodsOutput represents the distinct payment methods in use.
type ListPaymentMethodsOutput struct {
	PaymentMethods []string
}

// ListPaymentMethodsUseCase lists the payment methods that appear on stored
// expenses, for statement upload selectors.
type ListPaymentMethodsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListPaymentMethodsUseCase creates a new ListPaymentMethodsUseCase instance.
func NewListPaymentMethodsUseCase(expenseRepo adapter.ExpenseRepository) *ListPaymentMethodsUseCase {
	return &ListPaymentMethodsUseCase{expenseRepo: expenseRepo}
}

// Execute lists the distinct payment methods.
func (uc *ListPaymentMethodsUseCase) Execute(ctx context.Context) (*ListPaymentMethodsOutput, error) {
	methods, err := uc.expenseRepo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInternal,
			"failed to list payment methods",
			err,
		)
	}

	return &ListPaymentMethodsOutput{PaymentMethods: methods}, nil
}
