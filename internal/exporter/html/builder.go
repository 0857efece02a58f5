package html

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"forgesheet/internal/config"
	"forgesheet/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// ReportData feeds the materials report template
type ReportData struct {
	RunDate        string
	Source         string
	Delimiter      string
	Materials      int
	RowsRead       int
	RowsSkipped    int
	TotalUnits     int64
	MissingUnits   int64
	AvailableUnits int64
	StackSize      int
	Rows           []*model.Material
	MissingRows    []*model.Material
}

func (e *HTMLExporter) Export(table *model.Table, summary *model.Summary, cfg *config.Config) error {
	data := ReportData{
		RunDate:        summary.RunDate,
		Source:         filepath.Base(summary.Source),
		Delimiter:      summary.DelimiterName(),
		Materials:      summary.Materials,
		RowsRead:       summary.RowsRead,
		RowsSkipped:    summary.RowsSkipped,
		TotalUnits:     summary.TotalUnits,
		MissingUnits:   summary.MissingUnits,
		AvailableUnits: summary.AvailableUnits,
		StackSize:      cfg.Sheet.DefaultStackSize,
		Rows:           table.Rows,
		MissingRows:    table.MissingOnly(),
	}

	outputFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".html"
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	tmpl, err := template.New("materials-report").Funcs(template.FuncMap{
		"comma": groupDigits,
		"zero": func(n int64) bool {
			return n == 0
		},
	}).Parse(MaterialsReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}

// groupDigits formats an integer with thousands separators for display
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
