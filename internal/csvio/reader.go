package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// delimiterSampleSize is how much of the decoded file the delimiter
// guess looks at
const delimiterSampleSize = 5000

// candidateDelimiters in guess priority order (ties break left to right)
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// Document is a parsed delimited file: one header row plus data rows.
// Short rows are padded so every row has len(Headers) cells.
type Document struct {
	Headers   []string
	Rows      [][]string
	Delimiter rune
}

// Cell returns the value of the named column in a row, or "" when the
// column is absent or the row is short
func (d *Document) Cell(row []string, header string) string {
	for i, h := range d.Headers {
		if h == header && i < len(row) {
			return row[i]
		}
	}
	return ""
}

// ReadFile reads and parses a delimited materials export.
// delimiter 0 means auto-detect.
func ReadFile(path string, delimiter rune) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	content := decode(raw)

	if delimiter == 0 {
		delimiter = GuessDelimiter(content)
	}

	return Parse(content, delimiter)
}

// decode turns raw file bytes into a UTF-8 string.
// Valid UTF-8 passes through (BOM stripped); anything else is treated
// as Windows-1252, which covers the Latin-1 exports seen in practice.
func decode(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw)
	}

	decoder := charmap.Windows1252.NewDecoder()
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		// Windows-1252 decoding cannot actually fail, but keep the
		// original bytes as a fallback anyway
		return string(raw)
	}
	return string(decoded)
}

// GuessDelimiter counts candidate delimiters in the leading sample and
// picks the most frequent one. Comma wins when nothing occurs.
func GuessDelimiter(content string) rune {
	sample := content
	if len(sample) > delimiterSampleSize {
		sample = sample[:delimiterSampleSize]
	}

	best := ','
	bestCount := 0
	for _, d := range candidateDelimiters {
		n := strings.Count(sample, string(d))
		if n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

// Parse splits content into a header row and padded data rows
func Parse(content string, delimiter rune) (*Document, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited input: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input contains no rows")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	doc := &Document{
		Headers:   headers,
		Rows:      make([][]string, 0, len(records)-1),
		Delimiter: delimiter,
	}

	for _, rec := range records[1:] {
		if isBlankRow(rec) {
			continue
		}
		row := make([]string, len(headers))
		copy(row, rec)
		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}

func isBlankRow(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
