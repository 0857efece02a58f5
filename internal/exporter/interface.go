package exporter

import (
	"forgesheet/internal/config"
	"forgesheet/internal/model"
)

// Exporter is the unified interface for all output strategies
type Exporter interface {
	Export(table *model.Table, summary *model.Summary, cfg *config.Config) error
}
