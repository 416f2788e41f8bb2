package dto

import (
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Description       string  `json:"description" binding:"required,min=1,max=255"`
	Amount            float64 `json:"amount" binding:"required"`
	Date              string  `json:"date" binding:"required"`
	PaymentMethod     string  `json:"payment_method" binding:"required,min=1,max=100"`
	InstallmentNumber *int    `json:"installment_number,omitempty"`
	InstallmentTotal  *int    `json:"installment_total,omitempty"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID                string `json:"id"`
	Description       string `json:"description"`
	Amount            string `json:"amount"`
	Date              string `json:"date"`
	PaymentMethod     string `json:"payment_method"`
	InstallmentNumber *int   `json:"installment_number,omitempty"`
	InstallmentTotal  *int   `json:"installment_total,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// ListExpensesResponse represents the response for expense listing.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// PaymentMethodsResponse represents the distinct payment methods in use.
type PaymentMethodsResponse struct {
	PaymentMethods []string `json:"payment_methods"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                expense.ID.String(),
		Description:       expense.Description,
		Amount:            expense.Amount.StringFixed(2),
		Date:              expense.Date.Format("2006-01-02"),
		PaymentMethod:     expense.PaymentMethod,
		InstallmentNumber: expense.InstallmentNumber,
		InstallmentTotal:  expense.InstallmentTotal,
		CreatedAt:         expense.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:         expense.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListExpensesResponse converts domain expenses to a ListExpensesResponse DTO.
func ToListExpensesResponse(expenses []*entity.Expense) ListExpensesResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = ToExpenseResponse(expense)
	}
	return ListExpensesResponse{
		Expenses: responses,
		Total:    len(responses),
	}
}
