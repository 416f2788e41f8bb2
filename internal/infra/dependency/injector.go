// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/reconciliation"
	"github.com/expense-tracker/backend/internal/application/usecase/statement"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	ConfigStore *reconciliation.ConfigStore
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil, in which case reconciliation runs without the
// candidate cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)

	// Create cache adapter
	var expenseCache adapter.ExpenseCache
	if redisClient != nil {
		expenseCache = cache.NewRedisExpenseCache(redisClient)
	}

	// Create the matching config store, seeded from the environment
	configStore := newConfigStore(cfg)

	// Create reconciliation use cases
	analyzeStatementUseCase := reconciliation.NewAnalyzeStatementUseCase(expenseRepo, expenseCache, configStore)
	getConfigUseCase := reconciliation.NewGetConfigUseCase(configStore)
	updateConfigUseCase := reconciliation.NewUpdateConfigUseCase(configStore)
	resetConfigUseCase := reconciliation.NewResetConfigUseCase(configStore)
	parseCSVUseCase := statement.NewParseCSVUseCase()

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, expenseCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, expenseCache)
	listPaymentMethodsUseCase := expense.NewListPaymentMethodsUseCase(expenseRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		deleteExpenseUseCase,
		listPaymentMethodsUseCase,
	)

	reconciliationController := controller.NewReconciliationController(
		analyzeStatementUseCase,
		parseCSVUseCase,
		getConfigUseCase,
		updateConfigUseCase,
		resetConfigUseCase,
	)

	// Create router
	analyzeRateLimiter := middleware.NewRateLimiter()
	r := router.NewRouter(healthController, expenseController, reconciliationController, analyzeRateLimiter)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		ConfigStore: configStore,
		Router:      r,
	}
}

// newConfigStore seeds the matching config store from the environment,
// falling back to the documented defaults when the overrides are invalid.
func newConfigStore(cfg *config.Config) *reconciliation.ConfigStore {
	initial := valueobject.DefaultMatchingConfig()
	initial.ValueTolerance = decimal.NewFromFloat(cfg.Matching.ValueTolerance)
	initial.DateToleranceDays = cfg.Matching.DateToleranceDays
	initial.MinMatchScore = cfg.Matching.MinMatchScore

	store, err := reconciliation.NewConfigStoreWithInitial(initial)
	if err != nil {
		slog.Warn("Invalid matching config overrides, using defaults", "error", err)
		return reconciliation.NewConfigStore()
	}
	return store
}
