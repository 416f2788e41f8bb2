// Package reconciliation contains the statement reconciliation engine and its
// use cases.
package reconciliation

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// dateLayouts are the accepted statement date formats, tried in order.
// Day-first layouts come before year-first since bank statements in the
// supported locales use DD/MM/YYYY.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02/01/06",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
	time.RFC3339,
}

// currencyMarkers are stripped from raw amounts before parsing.
var currencyMarkers = []string{"R$", "US$", "$", "€", "£"}

var diacriticsRemover = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeDescription canonicalizes a description for comparison:
// Unicode-normalized, diacritics stripped, lower-cased, punctuation that is
// not part of alphanumerics removed and internal whitespace collapsed.
func NormalizeDescription(raw string) string {
	stripped, _, err := transform.String(diacriticsRemover, raw)
	if err != nil {
		// Malformed UTF-8; fall back to the raw text so scoring still works.
		stripped = raw
	}

	var b strings.Builder
	b.Grow(len(stripped))
	lastSpace := true
	for _, r := range strings.ToLower(stripped) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

// ParseAmount normalizes a raw amount string into an absolute decimal rounded
// to 2 places. It accepts currency symbols, thousands separators and either
// comma or dot as the decimal separator. Returns ErrInvalidAmount when the
// input cannot be parsed.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	for _, marker := range currencyMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
	s = strings.ReplaceAll(s, " ", "")

	if s == "" {
		return decimal.Zero, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidAmount,
			"amount is empty",
			domainerror.ErrInvalidAmount,
		)
	}

	// Decide the decimal separator: when both are present, the rightmost one
	// wins and the other is a thousands separator. A lone comma is a decimal
	// separator ("23,50"); a lone dot is kept as-is.
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidAmount,
			"amount is not a valid number: "+raw,
			domainerror.ErrInvalidAmount,
		)
	}

	return amount.Abs().Round(2), nil
}

// ParseDate normalizes a raw date string into a UTC calendar date. Returns
// ErrInvalidDate when no accepted layout matches.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidDate,
			"date is empty",
			domainerror.ErrInvalidDate,
		)
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, domainerror.NewReconciliationError(
		domainerror.ErrCodeInvalidDate,
		"date does not match any accepted format: "+raw,
		domainerror.ErrInvalidDate,
	)
}

// NormalizeLineItem converts a raw statement line into the common comparable
// shape. The returned error carries the offending field so callers can route
// the line to the unmatched list with a reason instead of aborting the run.
func NormalizeLineItem(raw valueobject.RawLineItem) (valueobject.LineItem, error) {
	amount, err := ParseAmount(raw.Amount)
	if err != nil {
		return valueobject.LineItem{RawDescription: raw.Description}, err
	}

	date, err := ParseDate(raw.Date)
	if err != nil {
		return valueobject.LineItem{RawDescription: raw.Description}, err
	}

	return valueobject.LineItem{
		Description:    NormalizeDescription(raw.Description),
		RawDescription: raw.Description,
		Amount:         amount,
		Date:           date,
	}, nil
}
