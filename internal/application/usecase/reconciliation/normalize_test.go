// Package reconciliation contains the statement reconciliation engine and its
// use cases.
package reconciliation

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "UBER *TRIP",
			expected: "uber trip",
		},
		{
			name:     "strips diacritics",
			input:    "Pão de Açúcar",
			expected: "pao de acucar",
		},
		{
			name:     "collapses internal whitespace",
			input:    "  NETFLIX   .COM   ",
			expected: "netflix com",
		},
		{
			name:     "keeps digits",
			input:    "PARC 02/05 MAGAZINE",
			expected: "parc 02 05 magazine",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "*** --- ***",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDescription(tt.input)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "plain dot decimal",
			input:    "23.50",
			expected: "23.5",
		},
		{
			name:     "comma decimal separator",
			input:    "23,50",
			expected: "23.5",
		},
		{
			name:     "currency symbol with comma decimal",
			input:    "R$ 1.234,56",
			expected: "1234.56",
		},
		{
			name:     "dollar with thousands comma",
			input:    "$1,234.56",
			expected: "1234.56",
		},
		{
			name:     "negative becomes absolute",
			input:    "-45.00",
			expected: "45",
		},
		{
			name:     "integer amount",
			input:    "120",
			expected: "120",
		},
		{
			name:     "rounds to two decimals",
			input:    "10.999",
			expected: "11",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "currency symbol only",
			input:   "R$",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				if !errors.Is(err, domainerror.ErrInvalidAmount) {
					t.Errorf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "ISO date",
			input:    "2024-03-15",
			expected: "2024-03-15",
		},
		{
			name:     "day first slash",
			input:    "15/03/2024",
			expected: "2024-03-15",
		},
		{
			name:     "day first two digit year",
			input:    "15/03/24",
			expected: "2024-03-15",
		},
		{
			name:     "day first dash",
			input:    "15-03-2024",
			expected: "2024-03-15",
		},
		{
			name:     "year first slash",
			input:    "2024/03/15",
			expected: "2024-03-15",
		},
		{
			name:     "day first dot",
			input:    "15.03.2024",
			expected: "2024-03-15",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "sometime in march",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "15/13/2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				if !errors.Is(err, domainerror.ErrInvalidDate) {
					t.Errorf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format("2006-01-02") != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got.Format("2006-01-02"))
			}
			if got.Location() != time.UTC {
				t.Errorf("expected UTC date, got %v", got.Location())
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("expected midnight, got %v", got)
			}
		})
	}
}

func TestNormalizeLineItem(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		item, err := NormalizeLineItem(valueobject.RawLineItem{
			Description: "UBER *TRIP",
			Amount:      "23,50",
			Date:        "15/03/2024",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Description != "uber trip" {
			t.Errorf("expected canonical description, got %q", item.Description)
		}
		if item.RawDescription != "UBER *TRIP" {
			t.Errorf("expected raw description preserved, got %q", item.RawDescription)
		}
		if item.Amount.String() != "23.5" {
			t.Errorf("expected amount 23.5, got %s", item.Amount)
		}
		if item.Date.Format("2006-01-02") != "2024-03-15" {
			t.Errorf("expected date 2024-03-15, got %s", item.Date.Format("2006-01-02"))
		}
	})

	t.Run("invalid amount keeps raw description", func(t *testing.T) {
		item, err := NormalizeLineItem(valueobject.RawLineItem{
			Description: "MYSTERY CHARGE",
			Amount:      "??",
			Date:        "15/03/2024",
		})
		if err == nil {
			t.Fatal("expected error for invalid amount")
		}
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
		if item.RawDescription != "MYSTERY CHARGE" {
			t.Errorf("expected raw description preserved, got %q", item.RawDescription)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := NormalizeLineItem(valueobject.RawLineItem{
			Description: "MYSTERY CHARGE",
			Amount:      "10.00",
			Date:        "not a date",
		})
		if !errors.Is(err, domainerror.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}
