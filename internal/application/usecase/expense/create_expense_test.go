// Package expense contains use cases for managing user-recorded expenses.
package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeExpenseRepository struct {
	expenses  map[uuid.UUID]*entity.Expense
	createErr error
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return expense, nil
}

func (r *fakeExpenseRepository) FindByFilter(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if filter.PaymentMethod != "" && expense.PaymentMethod != filter.PaymentMethod {
			continue
		}
		result = append(result, expense)
	}
	return result, nil
}

func (r *fakeExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.expenses[id]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepository) ListPaymentMethods(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var methods []string
	for _, expense := range r.expenses {
		if !seen[expense.PaymentMethod] {
			seen[expense.PaymentMethod] = true
			methods = append(methods, expense.PaymentMethod)
		}
	}
	return methods, nil
}

type fakeExpenseCache struct {
	invalidated []string
}

func (c *fakeExpenseCache) Get(_ context.Context, _ string) ([]*entity.Expense, error) {
	return nil, nil
}

func (c *fakeExpenseCache) Set(_ context.Context, _ string, _ []*entity.Expense, _ time.Duration) error {
	return nil
}

func (c *fakeExpenseCache) Invalidate(_ context.Context, key string) error {
	c.invalidated = append(c.invalidated, key)
	return nil
}

func (c *fakeExpenseCache) InvalidateAll(_ context.Context) error {
	c.invalidated = append(c.invalidated, "*")
	return nil
}

func validCreateInput() CreateExpenseInput {
	return CreateExpenseInput{
		Description:   "Uber Trip",
		Amount:        decimal.RequireFromString("23.50"),
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "nubank",
	}
}

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates expense and invalidates cache", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		cache := &fakeExpenseCache{}
		uc := NewCreateExpenseUseCase(repo, cache)

		output, err := uc.Execute(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Expense.ID == uuid.Nil {
			t.Error("expected a generated ID")
		}
		if _, ok := repo.expenses[output.Expense.ID]; !ok {
			t.Error("expected expense stored in repository")
		}
		if len(cache.invalidated) != 1 {
			t.Fatalf("expected 1 cache invalidation, got %d", len(cache.invalidated))
		}
		if cache.invalidated[0] != adapter.ExpenseCacheKey("nubank") {
			t.Errorf("expected invalidation for the payment method key, got %q", cache.invalidated[0])
		}
	})

	t.Run("trims description and payment method", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		uc := NewCreateExpenseUseCase(repo, nil)

		input := validCreateInput()
		input.Description = "  Uber Trip  "
		input.PaymentMethod = " nubank "

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Description != "Uber Trip" {
			t.Errorf("expected trimmed description, got %q", output.Expense.Description)
		}
		if output.Expense.PaymentMethod != "nubank" {
			t.Errorf("expected trimmed payment method, got %q", output.Expense.PaymentMethod)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		one := 1
		three := 3
		five := 5

		tests := []struct {
			name         string
			mutate       func(*CreateExpenseInput)
			expectedCode domainerror.ExpenseErrorCode
		}{
			{
				name:         "empty description",
				mutate:       func(in *CreateExpenseInput) { in.Description = "   " },
				expectedCode: domainerror.ErrCodeEmptyExpenseDescription,
			},
			{
				name:         "zero amount",
				mutate:       func(in *CreateExpenseInput) { in.Amount = decimal.Zero },
				expectedCode: domainerror.ErrCodeInvalidExpenseAmount,
			},
			{
				name:         "negative amount",
				mutate:       func(in *CreateExpenseInput) { in.Amount = decimal.RequireFromString("-5") },
				expectedCode: domainerror.ErrCodeInvalidExpenseAmount,
			},
			{
				name:         "zero date",
				mutate:       func(in *CreateExpenseInput) { in.Date = time.Time{} },
				expectedCode: domainerror.ErrCodeInvalidExpenseDate,
			},
			{
				name:         "empty payment method",
				mutate:       func(in *CreateExpenseInput) { in.PaymentMethod = "" },
				expectedCode: domainerror.ErrCodeEmptyPaymentMethod,
			},
			{
				name:         "installment number without total",
				mutate:       func(in *CreateExpenseInput) { in.InstallmentNumber = &one },
				expectedCode: domainerror.ErrCodeInvalidInstallments,
			},
			{
				name: "installment number beyond total",
				mutate: func(in *CreateExpenseInput) {
					in.InstallmentNumber = &five
					in.InstallmentTotal = &three
				},
				expectedCode: domainerror.ErrCodeInvalidInstallments,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeExpenseRepository()
				uc := NewCreateExpenseUseCase(repo, nil)

				input := validCreateInput()
				tt.mutate(&input)

				_, err := uc.Execute(ctx, input)
				if err == nil {
					t.Fatal("expected validation error")
				}

				var expErr *domainerror.ExpenseError
				if !errors.As(err, &expErr) {
					t.Fatalf("expected ExpenseError, got %v", err)
				}
				if expErr.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, expErr.Code)
				}
				if len(repo.expenses) != 0 {
					t.Error("expected nothing stored after validation failure")
				}
			})
		}
	})

	t.Run("repository failure wraps internal error", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		repo.createErr = errors.New("connection refused")
		uc := NewCreateExpenseUseCase(repo, nil)

		_, err := uc.Execute(ctx, validCreateInput())
		if err == nil {
			t.Fatal("expected error")
		}

		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) {
			t.Fatalf("expected ExpenseError, got %v", err)
		}
		if expErr.Code != domainerror.ErrCodeExpenseInternal {
			t.Errorf("expected internal code, got %s", expErr.Code)
		}
	})
}

func TestDeleteExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and invalidates cache", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		cache := &fakeExpenseCache{}

		created, err := NewCreateExpenseUseCase(repo, nil).Execute(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeleteExpenseUseCase(repo, cache)
		if err := uc.Execute(ctx, DeleteExpenseInput{ID: created.Expense.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.expenses) != 0 {
			t.Error("expected expense removed")
		}
		if len(cache.invalidated) != 1 || cache.invalidated[0] != adapter.ExpenseCacheKey("nubank") {
			t.Errorf("expected invalidation for the payment method key, got %v", cache.invalidated)
		}
	})

	t.Run("missing expense", func(t *testing.T) {
		uc := NewDeleteExpenseUseCase(newFakeExpenseRepository(), nil)

		err := uc.Execute(ctx, DeleteExpenseInput{ID: uuid.New()})
		if err == nil {
			t.Fatal("expected error")
		}

		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) {
			t.Fatalf("expected ExpenseError, got %v", err)
		}
		if expErr.Code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected not-found code, got %s", expErr.Code)
		}
	})
}
