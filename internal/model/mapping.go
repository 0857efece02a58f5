package model

// Field identifies a semantic CSV column
type Field string

const (
	FieldName      Field = "name"
	FieldTotal     Field = "total"
	FieldMissing   Field = "missing"
	FieldAvailable Field = "available"
)

// ColumnMapping maps semantic fields to the CSV header that carries
// them. An empty string means the field is absent from the input;
// quantity fields then aggregate as zero. Name is mandatory and the
// resolver rejects a mapping without it.
type ColumnMapping struct {
	Name      string
	Total     string
	Missing   string
	Available string
}

// Column returns the resolved header for a field
func (m ColumnMapping) Column(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldTotal:
		return m.Total
	case FieldMissing:
		return m.Missing
	case FieldAvailable:
		return m.Available
	}
	return ""
}

// HasQuantities reports whether at least one quantity column resolved
func (m ColumnMapping) HasQuantities() bool {
	return m.Total != "" || m.Missing != "" || m.Available != ""
}
