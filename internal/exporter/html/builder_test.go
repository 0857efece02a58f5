package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forgesheet/internal/config"
	"forgesheet/internal/model"
)

func TestHTMLExport(t *testing.T) {
	table := model.NewTable()

	stone := model.NewMaterial("Stone Bricks")
	stone.Total, stone.Missing, stone.Available = 1344, 336, 1008
	table.Add(stone)

	oak := model.NewMaterial("Oak Planks")
	oak.Total, oak.Missing, oak.Available = 640, 0, 640
	table.Add(oak)

	summary := model.NewSummary(table)
	summary.RunDate = "2026-08-29"
	summary.Source = "/tmp/materials.csv"
	summary.Delimiter = ';'
	summary.RowsRead = 4

	cfg := &config.Config{
		Sheet: config.SheetConfig{DefaultStackSize: 64},
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "materials",
		},
	}

	e := NewHTMLExporter()
	if err := e.Export(table, summary, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "materials.html"))
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}

	html := string(content)
	for _, want := range []string{
		"Stone Bricks",
		"Oak Planks",
		"1,344",
		"semicolon-delimited",
		"2026-08-29",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Report missing %q", want)
		}
	}

	// Oak Planks has nothing missing, so only Stone Bricks may appear
	// in the missing section
	if strings.Count(html, "Oak Planks") != 1 {
		t.Errorf("Oak Planks appeared %d times, expected once (all-materials table only)",
			strings.Count(html, "Oak Planks"))
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in       int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1344, "1,344"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.expected {
			t.Errorf("groupDigits(%d) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
