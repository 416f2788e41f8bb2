// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	expenseController        *controller.ExpenseController
	reconciliationController *controller.ReconciliationController
	analyzeRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	reconciliationController *controller.ReconciliationController,
	analyzeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		expenseController:        expenseController,
		reconciliationController: reconciliationController,
		analyzeRateLimiter:       analyzeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.DELETE("/:id", r.expenseController.Delete)
				expenses.GET("/payment-methods", r.expenseController.ListPaymentMethods)
			}
		}

		if r.reconciliationController != nil {
			reconciliation := v1.Group("/reconciliation")
			{
				analyze := reconciliation.Group("")
				if r.analyzeRateLimiter != nil {
					analyze.Use(r.analyzeRateLimiter.Middleware())
				}
				analyze.POST("/analyze", r.reconciliationController.Analyze)
				analyze.POST("/analyze-csv", r.reconciliationController.AnalyzeCSV)
				reconciliation.GET("/config", r.reconciliationController.GetConfig)
				reconciliation.PATCH("/config", r.reconciliationController.UpdateConfig)
				reconciliation.POST("/config/reset", r.reconciliationController.ResetConfig)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
