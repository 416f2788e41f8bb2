package reconciliation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// candidatePair is a (line item, expense) pair at or above the acceptance
// threshold, kept with the tie-break keys used during assignment.
type candidatePair struct {
	lineIdx    int
	expenseIdx int
	score      valueobject.MatchScore
	dayDist    int
	valueDiff  decimal.Decimal
}

// Reconcile matches statement line items against candidate expenses and
// returns the categorized report. It is a pure function of its arguments:
// given identical inputs and config, the result is identical, including
// ordering. Nil or empty inputs yield a result with the corresponding lists
// empty; the call itself never fails for them.
//
// Assignment is greedy by descending composite score rather than a globally
// optimal bipartite matching: a highest-score-first pass is straightforward to
// explain to a user reviewing mismatches, and genuinely ambiguous collisions
// are rare in personal finance data. Ties are broken by smaller day distance,
// then smaller value distance, then input order.
func Reconcile(
	rawLines []valueobject.RawLineItem,
	expenses []*entity.Expense,
	cfg valueobject.MatchingConfig,
) (*valueobject.ReconciliationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	// Normalize every line item. Failures are routed to the unmatched list
	// with a reason instead of aborting the run.
	lines := make([]valueobject.LineItem, len(rawLines))
	notes := make([]string, len(rawLines))
	for i, raw := range rawLines {
		line, err := NormalizeLineItem(raw)
		lines[i] = line
		if err != nil {
			notes[i] = err.Error()
		}
	}

	// Canonicalize the expense side once.
	expenseDescs := make([]string, len(expenses))
	expenseAmounts := make([]decimal.Decimal, len(expenses))
	for i, expense := range expenses {
		expenseDescs[i] = NormalizeDescription(expense.Description)
		expenseAmounts[i] = expense.Amount.Abs().Round(2)
	}

	// Score the full matrix, keeping only pairs at or above the threshold.
	var candidates []candidatePair
	for li := range lines {
		if notes[li] != "" {
			continue
		}
		for ei, expense := range expenses {
			score := ScoreMatch(lines[li], expenseDescs[ei], expenseAmounts[ei], expense.Date, cfg)
			if score.Composite < cfg.MinMatchScore {
				continue
			}
			candidates = append(candidates, candidatePair{
				lineIdx:    li,
				expenseIdx: ei,
				score:      score,
				dayDist:    dayDistance(lines[li].Date, expense.Date),
				valueDiff:  lines[li].Amount.Sub(expenseAmounts[ei]).Abs(),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score.Composite != b.score.Composite {
			return a.score.Composite > b.score.Composite
		}
		if a.dayDist != b.dayDist {
			return a.dayDist < b.dayDist
		}
		if !a.valueDiff.Equal(b.valueDiff) {
			return a.valueDiff.LessThan(b.valueDiff)
		}
		if a.lineIdx != b.lineIdx {
			return a.lineIdx < b.lineIdx
		}
		return a.expenseIdx < b.expenseIdx
	})

	// Greedy 1:1 assignment: commit the best remaining pair, retire both
	// sides, repeat.
	lineMatched := make([]bool, len(lines))
	expenseMatched := make([]bool, len(expenses))
	var matches []valueobject.MatchedPair
	for _, pair := range candidates {
		if lineMatched[pair.lineIdx] || expenseMatched[pair.expenseIdx] {
			continue
		}
		lineMatched[pair.lineIdx] = true
		expenseMatched[pair.expenseIdx] = true
		matches = append(matches, valueobject.MatchedPair{
			LineItem: lines[pair.lineIdx],
			Expense:  expenses[pair.expenseIdx],
			Score:    pair.score,
		})
	}

	// Partition leftovers, preserving original input order.
	var unmatchedLines []valueobject.UnmatchedLineItem
	for i := range lines {
		if lineMatched[i] {
			continue
		}
		unmatchedLines = append(unmatchedLines, valueobject.UnmatchedLineItem{
			LineItem: lines[i],
			Note:     notes[i],
		})
	}

	var unmatchedExpenses []*entity.Expense
	for i, expense := range expenses {
		if !expenseMatched[i] {
			unmatchedExpenses = append(unmatchedExpenses, expense)
		}
	}

	totalMatched := decimal.Zero
	for _, m := range matches {
		totalMatched = totalMatched.Add(m.Expense.Amount.Abs().Round(2))
	}

	return &valueobject.ReconciliationResult{
		Matches:            matches,
		UnmatchedLineItems: unmatchedLines,
		UnmatchedExpenses:  unmatchedExpenses,
		Summary: valueobject.ReconciliationSummary{
			TotalLineItems:     len(rawLines),
			TotalExpenses:      len(expenses),
			MatchedCount:       len(matches),
			TotalAmountMatched: totalMatched,
			ProcessingTimeMs:   time.Since(start).Milliseconds(),
		},
	}, nil
}
