package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Column ColumnConfig `mapstructure:"column"`
	Sheet  SheetConfig  `mapstructure:"sheet"`
	Output OutputConfig `mapstructure:"output"`
}

// InputConfig holds input file settings
type InputConfig struct {
	CSV       string `mapstructure:"csv"`       // Path to the materials CSV export
	Delimiter string `mapstructure:"delimiter"` // Delimiter override; empty means auto-detect
}

// ColumnConfig holds explicit column-name overrides.
// Empty values mean fuzzy detection against the header row.
type ColumnConfig struct {
	Name      string `mapstructure:"name"`
	Total     string `mapstructure:"total"`
	Missing   string `mapstructure:"missing"`
	Available string `mapstructure:"available"`
}

// StackOverride pins a custom stack size for one material on the REFS sheet
type StackOverride struct {
	Material  string `mapstructure:"material"`
	StackSize int    `mapstructure:"stack_size"`
}

// SheetConfig holds workbook generation settings
type SheetConfig struct {
	DefaultStackSize int             `mapstructure:"default_stack_size"` // Stack size when no REFS lookup matches
	StackOverrides   []StackOverride `mapstructure:"stack_overrides"`    // Pre-filled REFS rows
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`       // Output directory
	FileName string `mapstructure:"file_name"` // Output file name (without extension)
	Formats  string `mapstructure:"formats"`   // Comma-separated export formats
}

// Load reads the configuration from a file or uses defaults.
// If the file doesn't exist, defaults apply silently; flags layered on
// top by the caller then finish the picture.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - defaults plus flags is fine
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.csv", "")
	v.SetDefault("input.delimiter", "")

	v.SetDefault("column.name", "")
	v.SetDefault("column.total", "")
	v.SetDefault("column.missing", "")
	v.SetDefault("column.available", "")

	v.SetDefault("sheet.default_stack_size", 64)
	v.SetDefault("sheet.stack_overrides", defaultStackOverrides())

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "forgematica_materials_sheets")
	v.SetDefault("output.formats", "excel")
}

// defaultStackOverrides lists the items whose stack size is not 64.
// Editable in config.yaml; the generated REFS sheet stays editable in
// the spreadsheet too.
func defaultStackOverrides() []map[string]interface{} {
	common := []struct {
		Material string
		Size     int
	}{
		{"Ender Pearl", 16},
		{"Egg", 16},
		{"Snowball", 16},
		{"Boat", 1},
		{"Armor (any)", 1},
		{"Tool (any)", 1},
		{"Banner", 16},
	}

	out := make([]map[string]interface{}, 0, len(common))
	for _, c := range common {
		out = append(out, map[string]interface{}{
			"material":   c.Material,
			"stack_size": c.Size,
		})
	}
	return out
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	if c.Input.CSV != "" {
		absCSV, err := filepath.Abs(c.Input.CSV)
		if err != nil {
			return fmt.Errorf("failed to resolve input.csv: %w", err)
		}
		c.Input.CSV = absCSV
	}

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// DelimiterRune returns the delimiter override as a rune, 0 meaning
// auto-detect. Accepts the literal character plus the spellings "tab",
// "\t", "comma", "semicolon" and "pipe".
func (c *Config) DelimiterRune() (rune, error) {
	switch strings.ToLower(c.Input.Delimiter) {
	case "":
		return 0, nil
	case "tab", "\\t", "\t":
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}

	runes := []rune(c.Input.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", c.Input.Delimiter)
	}
	return runes[0], nil
}

// GetOutputPath returns the full path for the output workbook
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".xlsx")
}

// FormatList splits the configured formats string
func (c *Config) FormatList() []string {
	return strings.Split(c.Output.Formats, ",")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Input.CSV == "" {
		return fmt.Errorf("input.csv is required (use --csv)")
	}

	if _, err := os.Stat(c.Input.CSV); os.IsNotExist(err) {
		return fmt.Errorf("input CSV not found: %s", c.Input.CSV)
	}

	if c.Sheet.DefaultStackSize <= 0 {
		return fmt.Errorf("sheet.default_stack_size must be positive, got %d", c.Sheet.DefaultStackSize)
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	if _, err := c.DelimiterRune(); err != nil {
		return err
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Forgematica Sheets Configuration ===")
	fmt.Printf("Input CSV:        %s\n", c.Input.CSV)
	fmt.Printf("Delimiter:        %s\n", printable(c.Input.Delimiter, "(auto)"))
	fmt.Printf("Name Column:      %s\n", printable(c.Column.Name, "(detect)"))
	fmt.Printf("Total Column:     %s\n", printable(c.Column.Total, "(detect)"))
	fmt.Printf("Missing Column:   %s\n", printable(c.Column.Missing, "(detect)"))
	fmt.Printf("Available Column: %s\n", printable(c.Column.Available, "(detect)"))
	fmt.Printf("Stack Size:       %d\n", c.Sheet.DefaultStackSize)
	fmt.Printf("Stack Overrides:  %d entries\n", len(c.Sheet.StackOverrides))
	fmt.Printf("Output Formats:   %s\n", c.Output.Formats)
	fmt.Printf("Output Workbook:  %s\n", c.GetOutputPath())
	fmt.Println("========================================")
}

func printable(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
