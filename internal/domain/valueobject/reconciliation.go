// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// MatchScore holds the three dimension scores and their weighted composite
// for a single (line item, expense) pair.
type MatchScore struct {
	DescriptionScore float64 // [0,1]
	ValueScore       float64 // [0,1]
	DateScore        float64 // [0,1]
	Composite        float64 // [0,100], weighted sum of the above
}

// MatchedPair is a committed 1:1 assignment between a statement line and an
// expense record.
type MatchedPair struct {
	LineItem LineItem
	Expense  *entity.Expense
	Score    MatchScore
}

// UnmatchedLineItem is a statement line that was not assigned any expense.
// Note carries the normalization-failure reason when the line could not be
// normalized; it is empty for lines that simply found no acceptable match.
type UnmatchedLineItem struct {
	LineItem LineItem
	Note     string
}

// ReconciliationSummary contains the totals for a reconciliation run.
// TotalAmountMatched sums the expense amounts of matched pairs, since the
// expense amount is the value being reconciled against the app's records.
type ReconciliationSummary struct {
	TotalLineItems     int
	TotalExpenses      int
	MatchedCount       int
	TotalAmountMatched decimal.Decimal
	ProcessingTimeMs   int64
}

// ReconciliationResult is the categorized report produced by a single
// reconciliation run. Unmatched lists preserve original input order. Created
// once per invocation and never mutated after construction.
type ReconciliationResult struct {
	Matches            []MatchedPair
	UnmatchedLineItems []UnmatchedLineItem
	UnmatchedExpenses  []*entity.Expense
	Summary            ReconciliationSummary
}
