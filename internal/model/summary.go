package model

// Summary captures run metadata for the report exporters
type Summary struct {
	RunDate   string // "2006-01-02"
	Source    string // Input CSV path
	Delimiter rune   // Delimiter used to parse the input

	Mapping ColumnMapping // Resolved column mapping

	// Row accounting
	RowsRead    int // Data rows seen in the input
	RowsSkipped int // Rows dropped for a blank name cell
	Materials   int // Distinct materials after grouping

	// Unit totals across all materials
	TotalUnits     int64
	MissingUnits   int64
	AvailableUnits int64
}

// NewSummary builds a Summary from an aggregated table
func NewSummary(table *Table) *Summary {
	s := &Summary{Materials: table.Len()}
	for _, m := range table.Rows {
		s.TotalUnits += m.Total
		s.MissingUnits += m.Missing
		s.AvailableUnits += m.Available
	}
	return s
}

// DelimiterName returns a printable name for the delimiter
func (s *Summary) DelimiterName() string {
	switch s.Delimiter {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	}
	return string(s.Delimiter)
}
