package word

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"forgesheet/internal/config"
	"forgesheet/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

// WordExporter writes a printable shopping-list document.
// Regenerate template.docx with cmd/gentemplate when the placeholders
// change.
type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(table *model.Table, summary *model.Summary, cfg *config.Config) error {
	// The docx library only opens files, so extract the embedded
	// template to a temp path first
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "forgesheet-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	doc.Replace("{{Date}}", summary.RunDate, -1)
	doc.Replace("{{Source}}", filepath.Base(summary.Source), -1)
	doc.Replace("{{Materials}}", fmt.Sprintf("%d", summary.Materials), -1)
	doc.Replace("{{MissingUnits}}", fmt.Sprintf("%d", summary.MissingUnits), -1)
	doc.Replace("{{Content}}", buildShoppingList(table), -1)

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".docx"
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// buildShoppingList renders the aggregated table as plain text.
// Quantities are the raw aggregated sums; stack and chest breakdowns
// stay in the workbook where the formulas live.
func buildShoppingList(table *model.Table) string {
	var sb strings.Builder

	sb.WriteString("MATERIALS SHOPPING LIST\n\n")
	sb.WriteString(fmt.Sprintf("%-36s %12s %12s %12s\n", "Material", "Total", "Missing", "Available"))
	sb.WriteString(strings.Repeat("-", 76) + "\n")

	for _, m := range table.Rows {
		sb.WriteString(fmt.Sprintf("%-36s %12d %12d %12d\n",
			truncate(m.Name, 36), m.Total, m.Missing, m.Available))
	}

	missing := table.MissingOnly()
	if len(missing) > 0 {
		sb.WriteString("\n\nSTILL MISSING\n\n")
		sb.WriteString(fmt.Sprintf("%-36s %12s\n", "Material", "Missing"))
		sb.WriteString(strings.Repeat("-", 50) + "\n")
		for _, m := range missing {
			sb.WriteString(fmt.Sprintf("%-36s %12d\n", truncate(m.Name, 36), m.Missing))
		}
	}

	return sb.String()
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
