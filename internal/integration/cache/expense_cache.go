// Package cache implements cache adapters backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// expenseKeyPattern matches every cached candidate list.
const expenseKeyPattern = "expenses:method:*"

// redisExpenseCache implements the adapter.ExpenseCache interface on Redis.
type redisExpenseCache struct {
	client *redis.Client
}

// NewRedisExpenseCache creates a new Redis-backed expense cache instance.
func NewRedisExpenseCache(client *redis.Client) adapter.ExpenseCache {
	return &redisExpenseCache{
		client: client,
	}
}

// Get returns the cached expense list for the key, or (nil, nil) on a miss.
// A corrupt cached value is treated as a miss after dropping the key.
func (c *redisExpenseCache) Get(ctx context.Context, key string) ([]*entity.Expense, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var expenses []*entity.Expense
	if err := json.Unmarshal(payload, &expenses); err != nil {
		_ = c.client.Del(ctx, key).Err()
		return nil, nil
	}
	return expenses, nil
}

// Set stores the expense list under the key with the given TTL.
func (c *redisExpenseCache) Set(ctx context.Context, key string, expenses []*entity.Expense, ttl time.Duration) error {
	payload, err := json.Marshal(expenses)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Invalidate drops the cached list for the key.
func (c *redisExpenseCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// InvalidateAll drops every cached expense list.
func (c *redisExpenseCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, expenseKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
