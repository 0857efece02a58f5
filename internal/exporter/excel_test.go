package exporter

import (
	"path/filepath"
	"strings"
	"testing"

	"forgesheet/internal/config"
	"forgesheet/internal/model"

	"github.com/xuri/excelize/v2"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Sheet: config.SheetConfig{
			DefaultStackSize: 64,
			StackOverrides: []config.StackOverride{
				{Material: "Ender Pearl", StackSize: 16},
				{Material: "Boat", StackSize: 1},
			},
		},
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "test_materials",
		},
	}
}

func testTable() (*model.Table, *model.Summary) {
	table := model.NewTable()

	stone := model.NewMaterial("Stone Bricks")
	stone.Total, stone.Missing, stone.Available = 1344, 336, 1008
	table.Add(stone)

	oak := model.NewMaterial("Oak Planks")
	oak.Total, oak.Missing, oak.Available = 640, 0, 640
	table.Add(oak)

	pearl := model.NewMaterial("Ender Pearl")
	pearl.Total, pearl.Missing, pearl.Available = 32, 8, 24
	table.Add(pearl)

	summary := model.NewSummary(table)
	summary.RunDate = "2026-08-29"
	summary.Source = "materials.csv"
	summary.Delimiter = ','
	return table, summary
}

func exportWorkbook(t *testing.T) (*excelize.File, *config.Config) {
	t.Helper()

	cfg := testConfig(t)
	table, summary := testTable()

	e := NewExcelExporter()
	if err := e.Export(table, summary, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	return f, cfg
}

func TestExcelSheetLayout(t *testing.T) {
	f, _ := exportWorkbook(t)

	sheets := f.GetSheetList()
	for _, want := range []string{SheetTotals, SheetMissing, SheetRefs} {
		found := false
		for _, s := range sheets {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Workbook missing sheet %q (have %v)", want, sheets)
		}
	}

	for _, s := range sheets {
		if s == "Sheet1" {
			t.Error("Default Sheet1 was not removed")
		}
	}
}

func TestExcelTotalsSheet(t *testing.T) {
	f, _ := exportWorkbook(t)

	rows, err := f.GetRows(SheetTotals)
	if err != nil {
		t.Fatal(err)
	}

	// Header + 3 materials
	if len(rows) != 4 {
		t.Fatalf("TOTALS_ALL rows = %d, expected 4", len(rows))
	}
	if rows[0][0] != "Materials" || rows[0][1] != "Total (units)" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}

	name, _ := f.GetCellValue(SheetTotals, "A2")
	if name != "Stone Bricks" {
		t.Errorf("A2 = %q, expected %q", name, "Stone Bricks")
	}
	total, _ := f.GetCellValue(SheetTotals, "B2")
	if total != "1344" {
		t.Errorf("B2 = %q, expected %q", total, "1344")
	}
	stack, _ := f.GetCellValue(SheetTotals, "C2")
	if stack != "64" {
		t.Errorf("C2 = %q, expected default stack size", stack)
	}

	formula, _ := f.GetCellFormula(SheetTotals, "D2")
	if formula != "CEILING(B2/C2, 1)" {
		t.Errorf("D2 formula = %q", formula)
	}
	formula, _ = f.GetCellFormula(SheetTotals, "E2")
	if formula != "IF(B2=0, 0, CEILING(D2/54, 1))" {
		t.Errorf("E2 formula = %q", formula)
	}
	formula, _ = f.GetCellFormula(SheetTotals, "F2")
	if formula != "MOD(D2, 54)" {
		t.Errorf("F2 formula = %q", formula)
	}
	formula, _ = f.GetCellFormula(SheetTotals, "G2")
	if formula != "MOD(B2,C2)" {
		t.Errorf("G2 formula = %q", formula)
	}
}

func TestExcelMissingSheet(t *testing.T) {
	f, _ := exportWorkbook(t)

	rows, err := f.GetRows(SheetMissing)
	if err != nil {
		t.Fatal(err)
	}

	// Header + 2 materials with Missing > 0 (Oak Planks excluded)
	if len(rows) != 3 {
		t.Fatalf("MISSING_ONLY rows = %d, expected 3", len(rows))
	}
	for _, row := range rows[1:] {
		if row[0] == "Oak Planks" {
			t.Error("Fully-stocked material leaked into MISSING_ONLY")
		}
	}

	missing, _ := f.GetCellValue(SheetMissing, "B2")
	if missing != "336" {
		t.Errorf("B2 = %q, expected missing quantity %q", missing, "336")
	}

	userUnits, _ := f.GetCellValue(SheetMissing, "C2")
	if userUnits != "0" {
		t.Errorf("C2 = %q, expected editable zero", userUnits)
	}

	formula, _ := f.GetCellFormula(SheetMissing, "E2")
	if formula != "MAX(0, B2+C2+D2*F2)" {
		t.Errorf("E2 formula = %q", formula)
	}
	formula, _ = f.GetCellFormula(SheetMissing, "F2")
	if formula != "IFERROR(VLOOKUP(A2, REFS!A:B, 2, FALSE), 64)" {
		t.Errorf("F2 formula = %q", formula)
	}
	formula, _ = f.GetCellFormula(SheetMissing, "G2")
	if formula != "CEILING(E2/F2, 1)" {
		t.Errorf("G2 formula = %q", formula)
	}
	formula, _ = f.GetCellFormula(SheetMissing, "J2")
	if formula != "MOD(E2,F2)" {
		t.Errorf("J2 formula = %q", formula)
	}
}

func TestExcelMissingSheetValidation(t *testing.T) {
	f, _ := exportWorkbook(t)

	dvs, err := f.GetDataValidations(SheetMissing)
	if err != nil {
		t.Fatal(err)
	}
	if len(dvs) == 0 {
		t.Fatal("Expected data validation on editable cells")
	}
	if !strings.HasPrefix(dvs[0].Sqref, "C2:D") {
		t.Errorf("Validation range = %q, expected editable columns C:D", dvs[0].Sqref)
	}
}

func TestExcelRefsSheet(t *testing.T) {
	f, _ := exportWorkbook(t)

	rows, err := f.GetRows(SheetRefs)
	if err != nil {
		t.Fatal(err)
	}

	if rows[0][0] != "Materials" || rows[0][1] != "Stack Size" {
		t.Errorf("Unexpected REFS header: %v", rows[0])
	}
	if rows[1][0] != "Ender Pearl" || rows[1][1] != "16" {
		t.Errorf("Unexpected REFS override row: %v", rows[1])
	}

	// Docs section follows the overrides after a spacer row
	foundDocs := false
	for _, row := range rows {
		if len(row) > 0 && row[0] == "Docs" {
			foundDocs = true
		}
	}
	if !foundDocs {
		t.Error("REFS sheet missing Docs section")
	}
}

func TestExcelExportUnwritableDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Dir = filepath.Join(cfg.Output.Dir, "does", "not", "exist")
	table, summary := testTable()

	e := NewExcelExporter()
	if err := e.Export(table, summary, cfg); err == nil {
		t.Error("Expected error when the output directory does not exist")
	}
}

func TestExcelEmptyTable(t *testing.T) {
	cfg := testConfig(t)
	table := model.NewTable()
	summary := model.NewSummary(table)

	e := NewExcelExporter()
	if err := e.Export(table, summary, cfg); err != nil {
		t.Fatalf("Export of empty table failed: %v", err)
	}

	f, err := excelize.OpenFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows(SheetTotals)
	if len(rows) != 1 {
		t.Errorf("Empty table TOTALS_ALL rows = %d, expected header only", len(rows))
	}
}
