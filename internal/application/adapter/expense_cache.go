// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseCacheKey builds the cache key for a payment method's candidate list.
// Writers and invalidators must agree on this key.
func ExpenseCacheKey(paymentMethod string) string {
	return "expenses:method:" + paymentMethod
}

// ExpenseCache is a read-through cache for candidate expense lists, keyed by
// payment method. A cache miss returns (nil, nil); callers fall back to the
// repository and repopulate. The cache is an optimization only: implementations
// must never be a correctness dependency of a reconciliation run.
type ExpenseCache interface {
	// Get returns the cached expense list for the key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]*entity.Expense, error)

	// Set stores the expense list under the key with the given TTL.
	Set(ctx context.Context, key string, expenses []*entity.Expense, ttl time.Duration) error

	// Invalidate drops the cached list for the key.
	Invalidate(ctx context.Context, key string) error

	// InvalidateAll drops every cached expense list.
	InvalidateAll(ctx context.Context) error
}
