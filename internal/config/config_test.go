package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	// Load config without a file (should use defaults)
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if cfg.Sheet.DefaultStackSize != 64 {
		t.Errorf("DefaultStackSize = %d, expected 64", cfg.Sheet.DefaultStackSize)
	}

	if len(cfg.Sheet.StackOverrides) == 0 {
		t.Error("Expected pre-filled stack overrides")
	}

	if cfg.Output.Dir == "" {
		t.Error("Expected Output.Dir to be set")
	}

	if cfg.Output.FileName == "" {
		t.Error("Expected Output.FileName to be set")
	}

	if cfg.Output.Formats == "" {
		t.Error("Expected at least one default format")
	}

	t.Logf("Config loaded successfully with defaults")
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	content := `input:
  csv: ./materials.csv
  delimiter: ";"
column:
  name: "Item"
sheet:
  default_stack_size: 16
  stack_overrides:
    - material: "Shulker Shell"
      stack_size: 64
output:
  dir: ./reports
  file_name: my_materials
  formats: excel,csv
`
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Input.Delimiter != ";" {
		t.Errorf("Delimiter = %q, expected %q", cfg.Input.Delimiter, ";")
	}
	if cfg.Column.Name != "Item" {
		t.Errorf("Column.Name = %q, expected %q", cfg.Column.Name, "Item")
	}
	if cfg.Sheet.DefaultStackSize != 16 {
		t.Errorf("DefaultStackSize = %d, expected 16", cfg.Sheet.DefaultStackSize)
	}
	if len(cfg.Sheet.StackOverrides) != 1 || cfg.Sheet.StackOverrides[0].Material != "Shulker Shell" {
		t.Errorf("StackOverrides = %+v, expected the configured entry", cfg.Sheet.StackOverrides)
	}
	if cfg.Output.FileName != "my_materials" {
		t.Errorf("FileName = %q, expected %q", cfg.Output.FileName, "my_materials")
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		in        string
		expected  rune
		shouldErr bool
	}{
		{"", 0, false},
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"comma", ',', false},
		{"semicolon", ';', false},
		{"pipe", '|', false},
		{"ab", 0, true},
	}

	for _, tt := range tests {
		cfg := &Config{Input: InputConfig{Delimiter: tt.in}}
		got, err := cfg.DelimiterRune()
		if tt.shouldErr {
			if err == nil {
				t.Errorf("DelimiterRune(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("DelimiterRune(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("DelimiterRune(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestGetOutputPath(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{
			Dir:      "/tmp/output",
			FileName: "materials",
		},
	}

	expected := filepath.Join("/tmp/output", "materials.xlsx")
	if got := cfg.GetOutputPath(); got != expected {
		t.Errorf("GetOutputPath() = %s, expected %s", got, expected)
	}
}

func TestFormatList(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Formats: "excel, csv,html"}}

	got := cfg.FormatList()
	if len(got) != 3 {
		t.Errorf("FormatList() = %v, expected 3 entries", got)
	}
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "materials.csv")
	if err := os.WriteFile(csvPath, []byte("Item,Total\nGlass,1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "Valid config",
			cfg: &Config{
				Input:  InputConfig{CSV: csvPath},
				Sheet:  SheetConfig{DefaultStackSize: 64},
				Output: OutputConfig{Dir: tmpDir, FileName: "report"},
			},
			shouldErr: false,
		},
		{
			name: "Missing input path",
			cfg: &Config{
				Sheet:  SheetConfig{DefaultStackSize: 64},
				Output: OutputConfig{Dir: tmpDir, FileName: "report"},
			},
			shouldErr: true,
		},
		{
			name: "Nonexistent input file",
			cfg: &Config{
				Input:  InputConfig{CSV: filepath.Join(tmpDir, "nope.csv")},
				Sheet:  SheetConfig{DefaultStackSize: 64},
				Output: OutputConfig{Dir: tmpDir, FileName: "report"},
			},
			shouldErr: true,
		},
		{
			name: "Zero stack size",
			cfg: &Config{
				Input:  InputConfig{CSV: csvPath},
				Sheet:  SheetConfig{DefaultStackSize: 0},
				Output: OutputConfig{Dir: tmpDir, FileName: "report"},
			},
			shouldErr: true,
		},
		{
			name: "Empty output filename",
			cfg: &Config{
				Input:  InputConfig{CSV: csvPath},
				Sheet:  SheetConfig{DefaultStackSize: 64},
				Output: OutputConfig{Dir: tmpDir, FileName: ""},
			},
			shouldErr: true,
		},
		{
			name: "Bad delimiter",
			cfg: &Config{
				Input:  InputConfig{CSV: csvPath, Delimiter: "ab"},
				Sheet:  SheetConfig{DefaultStackSize: 64},
				Output: OutputConfig{Dir: tmpDir, FileName: "report"},
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.shouldErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}
