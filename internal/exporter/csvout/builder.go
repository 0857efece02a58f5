package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"forgesheet/internal/config"
	"forgesheet/internal/model"
)

// CSVExporter writes the aggregated table as a plain CSV.
// No formulas, no styling; the same input always produces the same
// bytes, which makes this the format to diff between runs.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes <file_name>.csv next to the workbook
func (e *CSVExporter) Export(table *model.Table, summary *model.Summary, cfg *config.Config) error {
	outputFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".csv"

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(outputFile), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"Materials", "Total (units)", "Missing (units)", "Available (units)"}); err != nil {
		return err
	}

	for _, m := range table.Rows {
		record := []string{
			m.Name,
			strconv.FormatInt(m.Total, 10),
			strconv.FormatInt(m.Missing, 10),
			strconv.FormatInt(m.Available, 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV export: %w", err)
	}

	return nil
}
