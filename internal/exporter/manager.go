package exporter

import (
	"strings"

	"forgesheet/internal/exporter/csvout"
	"forgesheet/internal/exporter/html"
	"forgesheet/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "excel", "xlsx":
			exporters = append(exporters, NewExcelExporter())
		case "csv":
			exporters = append(exporters, csvout.NewCSVExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word", "docx":
			exporters = append(exporters, word.NewWordExporter())
		}
	}

	return exporters
}
