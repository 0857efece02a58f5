package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"forgesheet/internal/aggregator"
	"forgesheet/internal/config"
	"forgesheet/internal/csvio"
	"forgesheet/internal/exporter"
	"forgesheet/internal/logger"
	"forgesheet/internal/model"
	"forgesheet/internal/resolver"
	"forgesheet/internal/ui"
)

const (
	appName    = "Forgematica Sheets"
	appVersion = "1.0.0"
	appDesc    = "Converts a Forgematica materials CSV into a Sheets-ready workbook with stack/chest formulas"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	noPause     bool

	csvPath      string
	outPath      string
	delimiter    string
	nameCol      string
	totalCol     string
	missingCol   string
	availableCol string
	stackSize    int
	formats      string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&noPause, "no-pause", false, "Skip the press-Enter prompt on exit")

	flag.StringVar(&csvPath, "csv", "", "Path to the input materials CSV")
	flag.StringVar(&outPath, "out", "", "Output workbook path (overrides config)")
	flag.StringVar(&delimiter, "delimiter", "", "Delimiter override (auto-detect if omitted)")
	flag.StringVar(&nameCol, "name-col", "", "Override name/material column")
	flag.StringVar(&totalCol, "total-col", "", "Override total/required column")
	flag.StringVar(&missingCol, "missing-col", "", "Override missing/needed column")
	flag.StringVar(&availableCol, "available-col", "", "Override available/have column")
	flag.IntVar(&stackSize, "default-stack-size", 0, "Default stack size if no REFS lookup matches")
	flag.StringVar(&formats, "format", "", "Comma-separated output formats (excel,csv,html,word)")
}

func main() {
	// Ensure "Press Enter to Exit" runs even on panic or error, so a
	// double-clicked console window does not vanish
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "forgesheet.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := runConversion(cfg); err != nil {
		var cfgErr *resolver.ConfigurationError
		if errors.As(err, &cfgErr) {
			logger.Error("Configuration error: %v", cfgErr)
		} else {
			logger.Error("Conversion failed: %v", err)
		}
		return 1
	}

	logger.Info("✅ Done. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// applyFlags layers flag values over the loaded configuration
func applyFlags(cfg *config.Config) {
	if csvPath != "" {
		cfg.Input.CSV = csvPath
	}
	if delimiter != "" {
		cfg.Input.Delimiter = delimiter
	}
	if nameCol != "" {
		cfg.Column.Name = nameCol
	}
	if totalCol != "" {
		cfg.Column.Total = totalCol
	}
	if missingCol != "" {
		cfg.Column.Missing = missingCol
	}
	if availableCol != "" {
		cfg.Column.Available = availableCol
	}
	if stackSize > 0 {
		cfg.Sheet.DefaultStackSize = stackSize
	}
	if formats != "" {
		cfg.Output.Formats = formats
	}
	if outPath != "" {
		cfg.Output.Dir = filepath.Dir(outPath)
		cfg.Output.FileName = strings.TrimSuffix(filepath.Base(outPath), ".xlsx")
	}
}

// waitForEnter pauses execution and waits for user to press Enter
func waitForEnter() {
	if noPause {
		return
	}
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runConversion(cfg *config.Config) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseReading,
		ui.PhaseAggregating, // Resolving + Aggregating combined conceptually for user
		ui.PhaseGenerating,
	})

	// --- Phase 1: Reading ---
	logger.Info("Phase 1: Reading %s...", cfg.Input.CSV)
	readBar := pipeline.NextPhase(1)

	delim, err := cfg.DelimiterRune()
	if err != nil {
		return err
	}

	doc, err := csvio.ReadFile(cfg.Input.CSV, delim)
	if err != nil {
		return err
	}
	readBar.Finish()
	logger.Info("Parsed %d data rows (%d columns, delimiter %q)",
		len(doc.Rows), len(doc.Headers), string(doc.Delimiter))

	// --- Phase 2: Resolving & Aggregating ---
	logger.Info("Phase 2: Aggregating materials...")
	aggBar := pipeline.NextPhase(len(doc.Rows))

	mapping, err := resolver.Resolve(doc.Headers, resolver.Overrides{
		Name:      cfg.Column.Name,
		Total:     cfg.Column.Total,
		Missing:   cfg.Column.Missing,
		Available: cfg.Column.Available,
	})
	if err != nil {
		return err
	}

	if !mapping.HasQuantities() {
		logger.Warn("No quantity columns resolved; all totals will be zero")
	}

	result := aggregator.Aggregate(doc, mapping)
	aggBar.Add(len(doc.Rows))
	aggBar.Finish()

	summary := buildSummary(result, doc, mapping, cfg)
	logger.Info("Aggregated %d rows into %d materials (%d skipped)",
		result.RowsRead, result.Table.Len(), result.RowsSkipped)

	// --- Phase 3: Generating ---
	logger.Info("Phase 3: Generating outputs...")
	exporters := exporter.GetExporters(cfg.FormatList())
	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(result.Table, summary, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()

	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}

func buildSummary(result *aggregator.Result, doc *csvio.Document, mapping model.ColumnMapping, cfg *config.Config) *model.Summary {
	s := model.NewSummary(result.Table)
	s.RunDate = time.Now().Format("2006-01-02")
	s.Source = cfg.Input.CSV
	s.Delimiter = doc.Delimiter
	s.Mapping = mapping
	s.RowsRead = result.RowsRead
	s.RowsSkipped = result.RowsSkipped
	return s
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                  FORGEMATICA SHEETS v1.0.0                ║
║       Materials CSV → Workbook with Stack Formulas        ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
