package model

import "strings"

// Material represents one aggregated material line
type Material struct {
	// Identity
	Key  string // Normalized grouping key (trimmed, lowercased)
	Name string // Display name, first-seen original spelling (trimmed)

	// Quantities (units, non-negative after aggregation)
	Total     int64 // Total required
	Missing   int64 // Still missing
	Available int64 // Already on hand
}

// NormalizeKey derives the grouping key for a raw name cell.
// Display names that differ only in case or surrounding whitespace
// collapse into the same material.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NewMaterial creates a Material keyed from the raw name cell
func NewMaterial(raw string) *Material {
	return &Material{
		Key:  NormalizeKey(raw),
		Name: strings.TrimSpace(raw),
	}
}

// Table is an ordered collection of aggregated materials.
// Order is first-seen order from the input, which keeps repeated runs
// over the same file byte-identical.
type Table struct {
	Rows  []*Material
	index map[string]*Material
}

// NewTable creates an empty Table
func NewTable() *Table {
	return &Table{
		Rows:  make([]*Material, 0),
		index: make(map[string]*Material),
	}
}

// Get returns the material for a normalized key, or nil
func (t *Table) Get(key string) *Material {
	return t.index[key]
}

// Add appends a material and registers its key
func (t *Table) Add(m *Material) {
	if m == nil || m.Key == "" {
		return
	}
	t.Rows = append(t.Rows, m)
	t.index[m.Key] = m
}

// Len returns the number of distinct materials
func (t *Table) Len() int {
	return len(t.Rows)
}

// MissingOnly returns the materials with a positive missing quantity,
// preserving order
func (t *Table) MissingOnly() []*Material {
	out := make([]*Material, 0, len(t.Rows))
	for _, m := range t.Rows {
		if m.Missing > 0 {
			out = append(out, m)
		}
	}
	return out
}
