// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/reconciliation"
	"github.com/expense-tracker/backend/internal/application/usecase/statement"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles reconciliation endpoints.
type ReconciliationController struct {
	analyzeStatementUseCase *reconciliation.AnalyzeStatementUseCase
	parseCSVUseCase         *statement.ParseCSVUseCase
	getConfigUseCase        *reconciliation.GetConfigUseCase
	updateConfigUseCase     *reconciliation.UpdateConfigUseCase
	resetConfigUseCase      *reconciliation.ResetConfigUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	analyzeStatementUseCase *reconciliation.AnalyzeStatementUseCase,
	parseCSVUseCase *statement.ParseCSVUseCase,
	getConfigUseCase *reconciliation.GetConfigUseCase,
	updateConfigUseCase *reconciliation.UpdateConfigUseCase,
	resetConfigUseCase *reconciliation.ResetConfigUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		analyzeStatementUseCase: analyzeStatementUseCase,
		parseCSVUseCase:         parseCSVUseCase,
		getConfigUseCase:        getConfigUseCase,
		updateConfigUseCase:     updateConfigUseCase,
		resetConfigUseCase:      resetConfigUseCase,
	}
}

// Analyze handles POST /reconciliation/analyze requests.
func (c *ReconciliationController) Analyze(ctx *gin.Context) {
	var req dto.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidInput),
		})
		return
	}

	input, ok := c.buildAnalyzeInput(ctx, req.PaymentMethod, req.From, req.To)
	if !ok {
		return
	}

	input.LineItems = make([]valueobject.RawLineItem, len(req.LineItems))
	for i, item := range req.LineItems {
		input.LineItems[i] = valueobject.RawLineItem{
			Description: item.Description,
			Amount:      item.Amount,
			Date:        item.Date,
		}
	}

	output, err := c.analyzeStatementUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyzeResponse(output.Result, output.CandidateSource))
}

// AnalyzeCSV handles POST /reconciliation/analyze-csv requests. The CSV text
// is parsed into line items and then reconciled like the analyze endpoint.
func (c *ReconciliationController) AnalyzeCSV(ctx *gin.Context) {
	var req dto.AnalyzeCSVRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidInput),
		})
		return
	}

	parsed, err := c.parseCSVUseCase.Execute(ctx.Request.Context(), statement.ParseCSVInput{
		Text: req.CSV,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	input, ok := c.buildAnalyzeInput(ctx, req.PaymentMethod, req.From, req.To)
	if !ok {
		return
	}
	input.LineItems = parsed.LineItems

	output, err := c.analyzeStatementUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	response := dto.ToAnalyzeResponse(output.Result, output.CandidateSource)
	response.SkippedLines = parsed.SkippedLines

	ctx.JSON(http.StatusOK, response)
}

// GetConfig handles GET /reconciliation/config requests.
func (c *ReconciliationController) GetConfig(ctx *gin.Context) {
	output, err := c.getConfigUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchingConfigResponse(output.Config))
}

// UpdateConfig handles PATCH /reconciliation/config requests.
func (c *ReconciliationController) UpdateConfig(ctx *gin.Context) {
	var req dto.UpdateMatchingConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidInput),
		})
		return
	}

	patch := valueobject.MatchingConfigPatch{
		DateToleranceDays: req.DateToleranceDays,
		MinMatchScore:     req.MinMatchScore,
		DescriptionWeight: req.DescriptionWeight,
		ValueWeight:       req.ValueWeight,
		DateWeight:        req.DateWeight,
	}
	if req.ValueTolerance != nil {
		tolerance := decimal.NewFromFloat(*req.ValueTolerance)
		patch.ValueTolerance = &tolerance
	}

	output, err := c.updateConfigUseCase.Execute(ctx.Request.Context(), reconciliation.UpdateConfigInput{
		Patch: patch,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchingConfigResponse(output.Config))
}

// ResetConfig handles POST /reconciliation/config/reset requests.
func (c *ReconciliationController) ResetConfig(ctx *gin.Context) {
	output, err := c.resetConfigUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchingConfigResponse(output.Config))
}

// buildAnalyzeInput validates the shared payment method and period fields of
// the analyze endpoints. It writes the error response itself on failure.
func (c *ReconciliationController) buildAnalyzeInput(ctx *gin.Context, paymentMethod, from, to string) (reconciliation.AnalyzeStatementInput, bool) {
	input := reconciliation.AnalyzeStatementInput{
		PaymentMethod: paymentMethod,
	}

	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid 'from' date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidInput),
			})
			return input, false
		}
		input.From = &parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid 'to' date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidInput),
			})
			return input, false
		}
		input.To = &parsed
	}

	return input, true
}

// handleReconciliationError maps reconciliation errors to HTTP responses.
func (c *ReconciliationController) handleReconciliationError(ctx *gin.Context, err error) {
	var rcnErr *domainerror.ReconciliationError
	if errors.As(err, &rcnErr) {
		ctx.JSON(c.getStatusCodeForReconciliationError(rcnErr.Code), dto.ErrorResponse{
			Error: rcnErr.Message,
			Code:  string(rcnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReconciliationError maps error codes to HTTP status codes.
func (c *ReconciliationController) getStatusCodeForReconciliationError(code domainerror.ReconciliationErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidWeights,
		domainerror.ErrCodeNegativeTolerance,
		domainerror.ErrCodeScoreOutOfRange,
		domainerror.ErrCodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
