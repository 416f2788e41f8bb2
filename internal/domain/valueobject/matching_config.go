// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// weightSumEpsilon is the tolerance allowed when checking that the three
// dimension weights sum to 1.0.
const weightSumEpsilon = 0.001

// MatchingConfig contains the tunable thresholds and weights for
// statement-to-expense matching.
type MatchingConfig struct {
	// ValueTolerance is the maximum absolute amount difference still
	// considered a possible match.
	ValueTolerance decimal.Decimal

	// DateToleranceDays is the maximum calendar-day distance still
	// considered a possible match.
	DateToleranceDays int

	// MinMatchScore is the composite-score acceptance threshold (0-100).
	MinMatchScore float64

	// Dimension weights. Must sum to 1.0.
	DescriptionWeight float64
	ValueWeight       float64
	DateWeight        float64
}

// DefaultMatchingConfig returns the documented default matching configuration.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		ValueTolerance:    decimal.NewFromFloat(0.02),
		DateToleranceDays: 3,
		MinMatchScore:     60,
		DescriptionWeight: 0.3,
		ValueWeight:       0.4,
		DateWeight:        0.3,
	}
}

// Validate checks the configuration invariants: non-negative tolerances,
// a threshold within [0,100] and weights summing to 1.0.
func (c MatchingConfig) Validate() error {
	if c.ValueTolerance.IsNegative() {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeNegativeTolerance,
			"value tolerance must not be negative",
			domainerror.ErrInvalidConfig,
		)
	}
	if c.DateToleranceDays < 0 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeNegativeTolerance,
			"date tolerance must not be negative",
			domainerror.ErrInvalidConfig,
		)
	}
	if c.MinMatchScore < 0 || c.MinMatchScore > 100 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeScoreOutOfRange,
			"minimum match score must be between 0 and 100",
			domainerror.ErrInvalidConfig,
		)
	}
	if c.DescriptionWeight < 0 || c.ValueWeight < 0 || c.DateWeight < 0 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidWeights,
			"weights must not be negative",
			domainerror.ErrInvalidConfig,
		)
	}

	sum := c.DescriptionWeight + c.ValueWeight + c.DateWeight
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidWeights,
			"description, value and date weights must sum to 1.0",
			domainerror.ErrInvalidConfig,
		)
	}

	return nil
}

// MatchingConfigPatch carries a partial configuration update. Nil fields keep
// their current value.
type MatchingConfigPatch struct {
	ValueTolerance    *decimal.Decimal
	DateToleranceDays *int
	MinMatchScore     *float64
	DescriptionWeight *float64
	ValueWeight       *float64
	DateWeight        *float64
}

// Apply merges the patch into a copy of the configuration and returns it.
// The receiver is not modified.
func (c MatchingConfig) Apply(patch MatchingConfigPatch) MatchingConfig {
	merged := c

	if patch.ValueTolerance != nil {
		merged.ValueTolerance = *patch.ValueTolerance
	}
	if patch.DateToleranceDays != nil {
		merged.DateToleranceDays = *patch.DateToleranceDays
	}
	if patch.MinMatchScore != nil {
		merged.MinMatchScore = *patch.MinMatchScore
	}
	if patch.DescriptionWeight != nil {
		merged.DescriptionWeight = *patch.DescriptionWeight
	}
	if patch.ValueWeight != nil {
		merged.ValueWeight = *patch.ValueWeight
	}
	if patch.DateWeight != nil {
		merged.DateWeight = *patch.DateWeight
	}

	return merged
}
