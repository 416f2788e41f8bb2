// Package statement contains statement parsing use cases. Parsing produces
// raw line items; all normalization happens inside the reconciliation engine.
package statement

import (
	"context"
	"encoding/csv"
	"strings"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// Column-name aliases recognized in statement headers, lower-cased. Covers the
// export formats of the supported banks (Portuguese and English headers).
var (
	dateHeaders        = []string{"data", "date", "dt"}
	descriptionHeaders = []string{"descricao", "descrição", "description", "estabelecimento", "lancamento", "lançamento", "historico", "histórico"}
	amountHeaders      = []string{"valor", "amount", "value", "montante"}
)

// ParseCSVInput represents the input for parsing a statement CSV.
type ParseCSVInput struct {
	// Text is the decoded CSV content. File reading and character-set
	// detection are the caller's concern.
	Text string
}

// ParseCSVOutput represents the parsed statement lines.
type ParseCSVOutput struct {
	LineItems    []valueobject.RawLineItem
	SkippedLines int
}

// ParseCSVUseCase turns statement CSV text into raw line items. It detects the
// delimiter, maps columns from a header row when one is present, and skips
// structurally short rows. It does not validate amounts or dates; the
// reconciliation engine routes unparseable lines to the unmatched list.
type ParseCSVUseCase struct{}

// NewParseCSVUseCase creates a new ParseCSVUseCase instance.
func NewParseCSVUseCase() *ParseCSVUseCase {
	return &ParseCSVUseCase{}
}

// Execute parses the CSV text.
func (uc *ParseCSVUseCase) Execute(_ context.Context, input ParseCSVInput) (*ParseCSVOutput, error) {
	text := strings.TrimSpace(strings.TrimPrefix(input.Text, "\uFEFF"))
	if text == "" {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidInput,
			"statement CSV is empty",
			domainerror.ErrInvalidInput,
		)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidInput,
			"statement CSV is malformed",
			err,
		)
	}
	if len(records) == 0 {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidInput,
			"statement CSV has no rows",
			domainerror.ErrInvalidInput,
		)
	}

	dateIdx, descIdx, amountIdx, hasHeader := mapColumns(records[0])
	rows := records
	if hasHeader {
		rows = records[1:]
	}

	output := &ParseCSVOutput{}
	maxIdx := dateIdx
	if descIdx > maxIdx {
		maxIdx = descIdx
	}
	if amountIdx > maxIdx {
		maxIdx = amountIdx
	}

	for _, row := range rows {
		if len(row) <= maxIdx || isBlankRow(row) {
			output.SkippedLines++
			continue
		}
		output.LineItems = append(output.LineItems, valueobject.RawLineItem{
			Description: strings.TrimSpace(row[descIdx]),
			Amount:      strings.TrimSpace(row[amountIdx]),
			Date:        strings.TrimSpace(row[dateIdx]),
		})
	}

	return output, nil
}

// detectDelimiter picks the most frequent candidate delimiter in the first
// line. Comma wins ties since it is the CSV default.
func detectDelimiter(text string) rune {
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}

	best := ','
	bestCount := strings.Count(firstLine, ",")
	if n := strings.Count(firstLine, ";"); n > bestCount {
		best, bestCount = ';', n
	}
	if n := strings.Count(firstLine, "\t"); n > bestCount {
		best = '\t'
	}
	return best
}

// mapColumns resolves the date/description/amount column indexes. When the
// first row looks like a header its aliases decide the mapping and the row is
// skipped; otherwise the conventional date, description, amount order is
// assumed.
func mapColumns(first []string) (dateIdx, descIdx, amountIdx int, hasHeader bool) {
	dateIdx, descIdx, amountIdx = 0, 1, 2

	for i, field := range first {
		name := strings.ToLower(strings.TrimSpace(field))
		switch {
		case matchesHeader(name, dateHeaders):
			dateIdx = i
			hasHeader = true
		case matchesHeader(name, descriptionHeaders):
			descIdx = i
			hasHeader = true
		case matchesHeader(name, amountHeaders):
			amountIdx = i
			hasHeader = true
		}
	}

	return dateIdx, descIdx, amountIdx, hasHeader
}

func matchesHeader(name string, aliases []string) bool {
	for _, alias := range aliases {
		if name == alias {
			return true
		}
	}
	return false
}

func isBlankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
