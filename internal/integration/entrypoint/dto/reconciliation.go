package dto

import (
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// LineItemRequest represents a single statement line in an analyze request.
// Amount and date stay as strings so bank formats pass through untouched; the
// engine decides what is parseable.
type LineItemRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

// AnalyzeRequest represents the request body for POST /reconciliation/analyze.
type AnalyzeRequest struct {
	PaymentMethod string            `json:"payment_method" binding:"required"`
	From          string            `json:"from,omitempty"`
	To            string            `json:"to,omitempty"`
	LineItems     []LineItemRequest `json:"line_items"`
}

// AnalyzeCSVRequest represents the request body for POST /reconciliation/analyze-csv.
type AnalyzeCSVRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	CSV           string `json:"csv" binding:"required"`
}

// LineItemResponse represents a statement line in an analyze response.
type LineItemResponse struct {
	Description           string `json:"description"`
	NormalizedDescription string `json:"normalized_description,omitempty"`
	Amount                string `json:"amount,omitempty"`
	Date                  string `json:"date,omitempty"`
}

// MatchScoreResponse represents the per-dimension scores of a matched pair.
type MatchScoreResponse struct {
	DescriptionScore float64 `json:"description_score"`
	ValueScore       float64 `json:"value_score"`
	DateScore        float64 `json:"date_score"`
	Composite        float64 `json:"composite"`
}

// MatchedPairResponse represents a statement line paired with an expense.
type MatchedPairResponse struct {
	LineItem LineItemResponse   `json:"line_item"`
	Expense  ExpenseResponse    `json:"expense"`
	Score    MatchScoreResponse `json:"score"`
}

// UnmatchedLineItemResponse represents a statement line with no expense match.
type UnmatchedLineItemResponse struct {
	LineItem LineItemResponse `json:"line_item"`
	Note     string           `json:"note,omitempty"`
}

// AnalyzeSummaryResponse contains reconciliation run statistics.
type AnalyzeSummaryResponse struct {
	TotalLineItems     int    `json:"total_line_items"`
	TotalExpenses      int    `json:"total_expenses"`
	MatchedCount       int    `json:"matched_count"`
	TotalAmountMatched string `json:"total_amount_matched"`
	ProcessingTimeMs   int64  `json:"processing_time_ms"`
}

// AnalyzeResponse represents the response for the analyze endpoints.
type AnalyzeResponse struct {
	Matches            []MatchedPairResponse       `json:"matches"`
	UnmatchedLineItems []UnmatchedLineItemResponse `json:"unmatched_line_items"`
	UnmatchedExpenses  []ExpenseResponse           `json:"unmatched_expenses"`
	Summary            AnalyzeSummaryResponse      `json:"summary"`
	CandidateSource    string                      `json:"candidate_source"`
	SkippedLines       int                         `json:"skipped_lines,omitempty"`
}

// MatchingConfigResponse represents the matching configuration.
type MatchingConfigResponse struct {
	ValueTolerance    string  `json:"value_tolerance"`
	DateToleranceDays int     `json:"date_tolerance_days"`
	MinMatchScore     float64 `json:"min_match_score"`
	DescriptionWeight float64 `json:"description_weight"`
	ValueWeight       float64 `json:"value_weight"`
	DateWeight        float64 `json:"date_weight"`
}

// UpdateMatchingConfigRequest represents the request body for PATCH
// /reconciliation/config. Only the fields present are changed.
type UpdateMatchingConfigRequest struct {
	ValueTolerance    *float64 `json:"value_tolerance,omitempty"`
	DateToleranceDays *int     `json:"date_tolerance_days,omitempty"`
	MinMatchScore     *float64 `json:"min_match_score,omitempty"`
	DescriptionWeight *float64 `json:"description_weight,omitempty"`
	ValueWeight       *float64 `json:"value_weight,omitempty"`
	DateWeight        *float64 `json:"date_weight,omitempty"`
}

// ToLineItemResponse converts a domain LineItem to its response DTO. Unparsed
// lines keep only their raw description.
func ToLineItemResponse(item valueobject.LineItem) LineItemResponse {
	response := LineItemResponse{
		Description:           item.RawDescription,
		NormalizedDescription: item.Description,
	}
	if !item.Amount.IsZero() || !item.Date.IsZero() {
		response.Amount = item.Amount.StringFixed(2)
	}
	if !item.Date.IsZero() {
		response.Date = item.Date.Format("2006-01-02")
	}
	return response
}

// ToMatchScoreResponse converts a domain MatchScore to its response DTO.
func ToMatchScoreResponse(score valueobject.MatchScore) MatchScoreResponse {
	return MatchScoreResponse{
		DescriptionScore: score.DescriptionScore,
		ValueScore:       score.ValueScore,
		DateScore:        score.DateScore,
		Composite:        score.Composite,
	}
}

// ToAnalyzeResponse converts a domain ReconciliationResult to its response DTO.
func ToAnalyzeResponse(result *valueobject.ReconciliationResult, candidateSource string) AnalyzeResponse {
	matches := make([]MatchedPairResponse, len(result.Matches))
	for i, pair := range result.Matches {
		matches[i] = MatchedPairResponse{
			LineItem: ToLineItemResponse(pair.LineItem),
			Expense:  ToExpenseResponse(pair.Expense),
			Score:    ToMatchScoreResponse(pair.Score),
		}
	}

	unmatchedLines := make([]UnmatchedLineItemResponse, len(result.UnmatchedLineItems))
	for i, item := range result.UnmatchedLineItems {
		unmatchedLines[i] = UnmatchedLineItemResponse{
			LineItem: ToLineItemResponse(item.LineItem),
			Note:     item.Note,
		}
	}

	unmatchedExpenses := make([]ExpenseResponse, len(result.UnmatchedExpenses))
	for i, expense := range result.UnmatchedExpenses {
		unmatchedExpenses[i] = ToExpenseResponse(expense)
	}

	return AnalyzeResponse{
		Matches:            matches,
		UnmatchedLineItems: unmatchedLines,
		UnmatchedExpenses:  unmatchedExpenses,
		Summary: AnalyzeSummaryResponse{
			TotalLineItems:     result.Summary.TotalLineItems,
			TotalExpenses:      result.Summary.TotalExpenses,
			MatchedCount:       result.Summary.MatchedCount,
			TotalAmountMatched: result.Summary.TotalAmountMatched.StringFixed(2),
			ProcessingTimeMs:   result.Summary.ProcessingTimeMs,
		},
		CandidateSource: candidateSource,
	}
}

// ToMatchingConfigResponse converts a domain MatchingConfig to its response DTO.
func ToMatchingConfigResponse(cfg valueobject.MatchingConfig) MatchingConfigResponse {
	return MatchingConfigResponse{
		ValueTolerance:    cfg.ValueTolerance.String(),
		DateToleranceDays: cfg.DateToleranceDays,
		MinMatchScore:     cfg.MinMatchScore,
		DescriptionWeight: cfg.DescriptionWeight,
		ValueWeight:       cfg.ValueWeight,
		DateWeight:        cfg.DateWeight,
	}
}
