package reconciliation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// substringScore is the floor given to a pair where one canonical description
// contains the other. Statement descriptions are often truncated or
// abbreviated versions of the recorded description, so containment in either
// direction scores highly.
const substringScore = 0.9

// DescriptionScore computes a similarity in [0,1] between two canonical
// descriptions based on shared-token overlap weighted by token length, with a
// containment bonus. Not symmetric in general and not required to be.
func DescriptionScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	score := tokenOverlapScore(a, b)
	if strings.Contains(a, b) || strings.Contains(b, a) {
		if score < substringScore {
			score = substringScore
		}
	}

	return score
}

// tokenOverlapScore weighs shared tokens by their length, so longer shared
// tokens count more than short/common ones, and divides by the smaller side's
// token mass to stay tolerant of truncation.
func tokenOverlapScore(a, b string) float64 {
	aTokens := strings.Fields(a)
	bTokens := strings.Fields(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	bSet := make(map[string]bool, len(bTokens))
	bMass := 0
	for _, t := range bTokens {
		bSet[t] = true
		bMass += len(t)
	}

	aMass := 0
	shared := 0
	seen := make(map[string]bool, len(aTokens))
	for _, t := range aTokens {
		aMass += len(t)
		if bSet[t] && !seen[t] {
			shared += len(t)
			seen[t] = true
		}
	}

	minMass := aMass
	if bMass < minMass {
		minMass = bMass
	}
	if minMass == 0 {
		return 0
	}

	score := float64(shared) / float64(minMass)
	if score > 1 {
		score = 1
	}
	return score
}

// ValueScore compares two amounts already rounded to 2 decimals: 1.0 when
// equal, linear decay to 0.0 as the absolute difference approaches the
// tolerance, 0.0 at and beyond it.
func ValueScore(a, b, tolerance decimal.Decimal) float64 {
	diff := a.Round(2).Sub(b.Round(2)).Abs()
	if diff.IsZero() {
		return 1
	}
	if tolerance.LessThanOrEqual(decimal.Zero) || diff.GreaterThanOrEqual(tolerance) {
		return 0
	}

	ratio, _ := diff.Div(tolerance).Float64()
	return 1 - ratio
}

// DateScore compares two calendar dates: 1.0 when equal, linear decay to 0.0
// as the day distance approaches the tolerance, 0.0 at and beyond it. A
// missing (zero) date on either side scores 0.0 without failing the match
// attempt.
func DateScore(a, b time.Time, toleranceDays int) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}

	days := dayDistance(a, b)
	if days == 0 {
		return 1
	}
	if toleranceDays <= 0 || days >= toleranceDays {
		return 0
	}

	return 1 - float64(days)/float64(toleranceDays)
}

// dayDistance returns the absolute calendar-day distance between two dates,
// independent of clock time and across month/year boundaries.
func dayDistance(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	diff := aDay.Sub(bDay)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

// ScoreMatch combines the three dimension scores into a 0-100 composite via
// the configured weights. expenseDescription must already be canonical.
func ScoreMatch(
	line valueobject.LineItem,
	expenseDescription string,
	expenseAmount decimal.Decimal,
	expenseDate time.Time,
	cfg valueobject.MatchingConfig,
) valueobject.MatchScore {
	descScore := DescriptionScore(line.Description, expenseDescription)
	valScore := ValueScore(line.Amount, expenseAmount, cfg.ValueTolerance)
	dateScore := DateScore(line.Date, expenseDate, cfg.DateToleranceDays)

	composite := 100 * (cfg.DescriptionWeight*descScore +
		cfg.ValueWeight*valScore +
		cfg.DateWeight*dateScore)

	return valueobject.MatchScore{
		DescriptionScore: descScore,
		ValueScore:       valScore,
		DateScore:        dateScore,
		Composite:        composite,
	}
}
