package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"forgesheet/internal/logger"
	"forgesheet/internal/model"
)

// ConfigurationError reports an unresolvable column mapping: a missing
// mandatory column or an override that names a header the input does
// not have. These abort the run.
type ConfigurationError struct {
	Field  model.Field
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("column mapping for %q: %s", e.Field, e.Detail)
}

// Overrides carries explicit column names from flags or config.
// A non-empty value is used verbatim and must match a header exactly.
type Overrides struct {
	Name      string
	Total     string
	Missing   string
	Available string
}

// Keyword sets matched against normalized headers, per field.
// Order matters only across headers, not within a set.
var fieldKeywords = map[model.Field][]string{
	model.FieldName:      {"name", "item", "material", "materials", "block", "id"},
	model.FieldTotal:     {"total", "required", "qty_total", "quantity_total", "amount", "count"},
	model.FieldMissing:   {"missing", "needed", "to_get", "to_obtain", "short", "lack"},
	model.FieldAvailable: {"available", "have", "stock", "in_chests", "present"},
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeHeader lowercases a header and collapses every run of
// non-alphanumeric characters to a single underscore
func NormalizeHeader(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// Resolve maps the semantic fields onto the input headers.
// Overrides win; otherwise headers are fuzzy-matched against the
// keyword set for each field. The name column is mandatory.
func Resolve(headers []string, ov Overrides) (model.ColumnMapping, error) {
	var mapping model.ColumnMapping

	resolve := func(field model.Field, override string) (string, error) {
		if override != "" {
			if !containsHeader(headers, override) {
				return "", &ConfigurationError{
					Field:  field,
					Detail: fmt.Sprintf("override column %q not found in headers %v", override, headers),
				}
			}
			return override, nil
		}
		return fuzzyFind(headers, fieldKeywords[field]), nil
	}

	var err error
	if mapping.Name, err = resolve(model.FieldName, ov.Name); err != nil {
		return mapping, err
	}
	if mapping.Total, err = resolve(model.FieldTotal, ov.Total); err != nil {
		return mapping, err
	}
	if mapping.Missing, err = resolve(model.FieldMissing, ov.Missing); err != nil {
		return mapping, err
	}
	if mapping.Available, err = resolve(model.FieldAvailable, ov.Available); err != nil {
		return mapping, err
	}

	if mapping.Name == "" {
		return mapping, &ConfigurationError{
			Field:  model.FieldName,
			Detail: fmt.Sprintf("no header matched and no override given (headers: %v)", headers),
		}
	}

	logger.Debug("Resolved columns: name=%q total=%q missing=%q available=%q",
		mapping.Name, mapping.Total, mapping.Missing, mapping.Available)

	return mapping, nil
}

// fuzzyFind scans headers in order for a keyword match.
// Pass 1 requires the keyword as a whole word inside the normalized
// header; pass 2 accepts a plain substring. The first header to match
// in a pass wins, so header order breaks ties.
func fuzzyFind(headers []string, keywords []string) string {
	for _, h := range headers {
		normed := NormalizeHeader(h)
		for _, kw := range keywords {
			if matchWord(normed, kw) {
				return h
			}
		}
	}
	for _, h := range headers {
		normed := NormalizeHeader(h)
		for _, kw := range keywords {
			if strings.Contains(normed, kw) {
				return h
			}
		}
	}
	return ""
}

// matchWord reports whether kw occurs in normed bounded by underscores
// or the string edges. Normalized headers only contain [a-z0-9_], so
// underscore is the sole word separator.
func matchWord(normed, kw string) bool {
	idx := 0
	for {
		i := strings.Index(normed[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		leftOK := start == 0 || normed[start-1] == '_'
		rightOK := end == len(normed) || normed[end] == '_'
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
