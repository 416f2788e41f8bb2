package reconciliation

import (
	"context"
	"log/slog"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// expenseCacheTTL bounds how long a candidate list may be served from cache
// before being refreshed from the store.
const expenseCacheTTL = 5 * time.Minute

// AnalyzeStatementInput represents the input for a reconciliation run.
type AnalyzeStatementInput struct {
	// PaymentMethod pre-filters the candidate expenses loaded from storage.
	PaymentMethod string

	// Optional period bounds for the candidate expenses.
	From *time.Time
	To   *time.Time

	// LineItems are the parsed statement lines to reconcile.
	LineItems []valueobject.RawLineItem
}

// AnalyzeStatementOutput represents the result of a reconciliation run.
type AnalyzeStatementOutput struct {
	Result *valueobject.ReconciliationResult

	// CandidateSource reports where the candidate expenses came from
	// ("cache" or "store").
	CandidateSource string
}

// AnalyzeStatementUseCase loads candidate expenses, snapshots the matching
// configuration and runs the reconciliation engine over the statement lines.
type AnalyzeStatementUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	expenseCache adapter.ExpenseCache
	configStore  *ConfigStore
}

// NewAnalyzeStatementUseCase creates a new AnalyzeStatementUseCase instance.
func NewAnalyzeStatementUseCase(
	expenseRepo adapter.ExpenseRepository,
	expenseCache adapter.ExpenseCache,
	configStore *ConfigStore,
) *AnalyzeStatementUseCase {
	return &AnalyzeStatementUseCase{
		expenseRepo:  expenseRepo,
		expenseCache: expenseCache,
		configStore:  configStore,
	}
}

// Execute runs a reconciliation over the statement lines against the user's
// recorded expenses for the payment method.
func (uc *AnalyzeStatementUseCase) Execute(ctx context.Context, input AnalyzeStatementInput) (*AnalyzeStatementOutput, error) {
	if input.PaymentMethod == "" {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidInput,
			"payment method is required",
			domainerror.ErrInvalidInput,
		)
	}

	expenses, source, err := uc.loadCandidates(ctx, input)
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeReconciliationInternal,
			"failed to load candidate expenses",
			err,
		)
	}

	// Snapshot the configuration once at entry; a concurrent update must not
	// change behavior mid-run.
	cfg := uc.configStore.Get()

	result, err := Reconcile(input.LineItems, expenses, cfg)
	if err != nil {
		return nil, err
	}

	return &AnalyzeStatementOutput{
		Result:          result,
		CandidateSource: source,
	}, nil
}

// loadCandidates fetches the candidate expenses, serving from the cache when
// the request has no period bounds. Cache failures degrade to the store.
func (uc *AnalyzeStatementUseCase) loadCandidates(ctx context.Context, input AnalyzeStatementInput) ([]*entity.Expense, string, error) {
	cacheable := input.From == nil && input.To == nil
	key := adapter.ExpenseCacheKey(input.PaymentMethod)

	if cacheable && uc.expenseCache != nil {
		cached, err := uc.expenseCache.Get(ctx, key)
		if err != nil {
			slog.Warn("Expense cache read failed, falling back to store", "key", key, "error", err)
		} else if cached != nil {
			return cached, "cache", nil
		}
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		PaymentMethod: input.PaymentMethod,
		From:          input.From,
		To:            input.To,
	})
	if err != nil {
		return nil, "", err
	}

	if cacheable && uc.expenseCache != nil {
		if err := uc.expenseCache.Set(ctx, key, expenses, expenseCacheTTL); err != nil {
			slog.Warn("Expense cache write failed", "key", key, "error", err)
		}
	}

	return expenses, "store", nil
}
