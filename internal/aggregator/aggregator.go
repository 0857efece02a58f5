package aggregator

import (
	"strconv"
	"strings"

	"forgesheet/internal/csvio"
	"forgesheet/internal/logger"
	"forgesheet/internal/model"
)

// Result is the aggregated table plus row accounting for the summary
type Result struct {
	Table       *model.Table
	RowsRead    int
	RowsSkipped int
}

// Aggregate groups the document rows by normalized material name and
// sums the mapped quantity columns. Group order and display names are
// first-seen. Rows with a blank name cell are skipped.
func Aggregate(doc *csvio.Document, mapping model.ColumnMapping) *Result {
	res := &Result{Table: model.NewTable()}

	for i, row := range doc.Rows {
		res.RowsRead++

		rawName := doc.Cell(row, mapping.Name)
		key := model.NormalizeKey(rawName)
		if key == "" {
			res.RowsSkipped++
			logger.Debug("Skipping row %d: blank material name", i+2)
			continue
		}

		mat := res.Table.Get(key)
		if mat == nil {
			mat = model.NewMaterial(rawName)
			res.Table.Add(mat)
		}

		mat.Total += quantity(doc, row, mapping.Total, i)
		mat.Missing += quantity(doc, row, mapping.Missing, i)
		mat.Available += quantity(doc, row, mapping.Available, i)
	}

	return res
}

// quantity parses one numeric cell. An unmapped column or an
// unparseable cell contributes zero; negatives are clamped to zero so
// aggregated quantities stay non-negative.
func quantity(doc *csvio.Document, row []string, column string, rowIdx int) int64 {
	if column == "" {
		return 0
	}

	raw := strings.TrimSpace(doc.Cell(row, column))
	if raw == "" {
		return 0
	}

	n, ok := parseNumber(raw)
	if !ok {
		logger.LogRowError(rowIdx+2, column, raw, "not numeric, counted as 0")
		return 0
	}
	if n < 0 {
		logger.LogRowError(rowIdx+2, column, raw, "negative, counted as 0")
		return 0
	}
	return n
}

// parseNumber accepts integers and decimal values (truncated).
// Thousands separators are tolerated ("1,234" and "1 234").
func parseNumber(raw string) (int64, bool) {
	cleaned := strings.NewReplacer(",", "", " ", "", " ", "").Replace(raw)

	if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}
