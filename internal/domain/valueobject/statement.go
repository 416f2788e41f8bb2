// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawLineItem is a statement line as produced by CSV decoding or OCR
// extraction, before normalization. All fields are raw text: amounts may use a
// comma decimal separator or carry a currency symbol, dates may come in any of
// the accepted statement formats.
type RawLineItem struct {
	Description string
	Amount      string
	Date        string
}

// LineItem is a normalized statement line in the common comparable shape:
// canonical description, absolute two-decimal amount and a calendar date.
// Created once per reconciliation run and never mutated.
type LineItem struct {
	// Description is the canonical form used for similarity scoring.
	Description string

	// RawDescription preserves the statement text for display.
	RawDescription string

	Amount decimal.Decimal
	Date   time.Time
}
