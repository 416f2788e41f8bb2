package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase             *expense.CreateExpenseUseCase
	listUseCase               *expense.ListExpensesUseCase
	deleteUseCase             *expense.DeleteExpenseUseCase
	listPaymentMethodsUseCase *expense.ListPaymentMethodsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	listPaymentMethodsUseCase *expense.ListPaymentMethodsUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:             createUseCase,
		listUseCase:               listUseCase,
		deleteUseCase:             deleteUseCase,
		listPaymentMethodsUseCase: listPaymentMethodsUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Description:       req.Description,
		Amount:            decimal.NewFromFloat(req.Amount),
		Date:              date,
		PaymentMethod:     req.PaymentMethod,
		InstallmentNumber: req.InstallmentNumber,
		InstallmentTotal:  req.InstallmentTotal,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests. Supports optional payment_method, from
// and to query filters.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{
		PaymentMethod: ctx.Query("payment_method"),
	}

	if from := ctx.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid 'from' date, expected YYYY-MM-DD",
			})
			return
		}
		input.From = &parsed
	}
	if to := ctx.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid 'to' date, expected YYYY-MM-DD",
			})
			return
		}
		input.To = &parsed
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListExpensesResponse(output.Expenses))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ID: id}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListPaymentMethods handles GET /expenses/payment-methods requests.
func (c *ExpenseController) ListPaymentMethods(ctx *gin.Context) {
	output, err := c.listPaymentMethodsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentMethodsResponse{
		PaymentMethods: output.PaymentMethods,
	})
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeEmptyExpenseDescription,
		domainerror.ErrCodeEmptyPaymentMethod,
		domainerror.ErrCodeInvalidInstallments:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
