package exporter

import (
	"fmt"

	"forgesheet/internal/config"
	"forgesheet/internal/model"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the generated workbook
const (
	SheetTotals  = "TOTALS_ALL"
	SheetMissing = "MISSING_ONLY"
	SheetRefs    = "REFS"
)

// doubleChestStacks is the slot count of a Minecraft double chest
const doubleChestStacks = 54

// ExcelExporter generates the formula workbook.
// All stack/chest arithmetic is emitted as formula text and evaluated
// by the spreadsheet application, never computed here.
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the three-sheet workbook
func (e *ExcelExporter) Export(table *model.Table, summary *model.Summary, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath()
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := e.writeTotalsSheet(f, styler, table, cfg); err != nil {
		return err
	}

	if err := e.writeMissingSheet(f, styler, table, cfg); err != nil {
		return err
	}

	if err := e.writeRefsSheet(f, styler, cfg); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if idx, err := f.GetSheetIndex(SheetTotals); err == nil && idx != -1 {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// --- TOTALS_ALL Sheet Logic ---

func (e *ExcelExporter) writeTotalsSheet(f *excelize.File, s *Styler, table *model.Table, cfg *config.Config) error {
	sheet := SheetTotals
	f.NewSheet(sheet)

	headers := []string{
		"Materials", "Total (units)", "Stack Size",
		"# Stacks (ceil)", "# Double Chests",
		"Stacks after last double", "Units after last stack",
	}
	e.writeHeaderRow(f, sheet, headers, s.HeaderStyle)
	e.freezeHeader(f, sheet)

	row := 2
	for _, m := range table.Rows {
		total := cell("B", row)
		stack := cell("C", row)
		stacks := cell("D", row)

		f.SetCellValue(sheet, cell("A", row), m.Name)
		f.SetCellValue(sheet, total, m.Total)
		f.SetCellValue(sheet, stack, cfg.Sheet.DefaultStackSize)
		f.SetCellFormula(sheet, stacks, stacksFormula(total, stack))
		f.SetCellFormula(sheet, cell("E", row), doubleChestsFormula(total, stacks))
		f.SetCellFormula(sheet, cell("F", row), stacksAfterDoubleFormula(stacks))
		f.SetCellFormula(sheet, cell("G", row), unitsAfterStackFormula(total, stack))

		f.SetCellStyle(sheet, cell("A", row), cell("A", row), s.MaterialStyle)
		f.SetCellStyle(sheet, cell("B", row), cell("B", row), s.NumberStyle)
		f.SetCellStyle(sheet, cell("C", row), cell("C", row), s.EditableStyle)
		f.SetCellStyle(sheet, cell("D", row), cell("G", row), s.FormulaStyle)
		row++
	}

	// Stack Size stays a plain number here, but the user may tune it
	if row > 2 {
		if err := addNonNegativeValidation(f, sheet, fmt.Sprintf("C2:C%d", row-1)); err != nil {
			return err
		}
	}

	f.SetColWidth(sheet, "A", "G", 20)
	f.SetColWidth(sheet, "A", "A", 28)

	return nil
}

// --- MISSING_ONLY Sheet Logic ---

func (e *ExcelExporter) writeMissingSheet(f *excelize.File, s *Styler, table *model.Table, cfg *config.Config) error {
	sheet := SheetMissing
	f.NewSheet(sheet)

	headers := []string{
		"Materials", "Total (units)",
		"User units (editable)", "User stacks (editable)",
		"Computed Total (units)", "Stack Size",
		"# Stacks (ceil)", "# Double Chests",
		"Stacks after last double", "Units after last stack",
	}
	e.writeHeaderRow(f, sheet, headers, s.HeaderStyle)
	e.freezeHeader(f, sheet)

	row := 2
	for _, m := range table.MissingOnly() {
		name := cell("A", row)
		missing := cell("B", row)
		userUnits := cell("C", row)
		userStacks := cell("D", row)
		computed := cell("E", row)
		stack := cell("F", row)
		stacks := cell("G", row)

		f.SetCellValue(sheet, name, m.Name)
		f.SetCellValue(sheet, missing, m.Missing)
		f.SetCellValue(sheet, userUnits, 0)
		f.SetCellValue(sheet, userStacks, 0)
		f.SetCellFormula(sheet, computed, computedTotalFormula(missing, userUnits, userStacks, stack))
		f.SetCellFormula(sheet, stack, stackLookupFormula(name, cfg.Sheet.DefaultStackSize))
		f.SetCellFormula(sheet, stacks, stacksFormula(computed, stack))
		f.SetCellFormula(sheet, cell("H", row), doubleChestsFormula(computed, stacks))
		f.SetCellFormula(sheet, cell("I", row), stacksAfterDoubleFormula(stacks))
		f.SetCellFormula(sheet, cell("J", row), unitsAfterStackFormula(computed, stack))

		f.SetCellStyle(sheet, name, name, s.MaterialStyle)
		f.SetCellStyle(sheet, missing, missing, s.NumberStyle)
		f.SetCellStyle(sheet, userUnits, userStacks, s.EditableStyle)
		f.SetCellStyle(sheet, computed, cell("J", row), s.FormulaStyle)
		row++
	}

	if row > 2 {
		if err := addNonNegativeValidation(f, sheet, fmt.Sprintf("C2:D%d", row-1)); err != nil {
			return err
		}
	}

	f.SetColWidth(sheet, "A", "J", 20)
	f.SetColWidth(sheet, "A", "A", 28)

	return nil
}

// --- REFS Sheet Logic ---

func (e *ExcelExporter) writeRefsSheet(f *excelize.File, s *Styler, cfg *config.Config) error {
	sheet := SheetRefs
	f.NewSheet(sheet)

	e.writeHeaderRow(f, sheet, []string{"Materials", "Stack Size"}, s.HeaderStyle)

	row := 2
	for _, ov := range cfg.Sheet.StackOverrides {
		f.SetCellValue(sheet, cell("A", row), ov.Material)
		f.SetCellValue(sheet, cell("B", row), ov.StackSize)
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), s.MaterialStyle)
		f.SetCellStyle(sheet, cell("B", row), cell("B", row), s.EditableStyle)
		row++
	}

	// Spacer, then documentation links
	row++
	f.SetCellValue(sheet, cell("A", row), "Docs")
	f.SetCellValue(sheet, cell("B", row), "URL")
	f.SetCellStyle(sheet, cell("A", row), cell("B", row), s.HeaderStyle)
	row++

	docs := []struct {
		Label string
		URL   string
	}{
		{"Google Sheets – CEILING", "https://support.google.com/docs/answer/3093471"},
		{"Google Sheets – MOD", "https://support.google.com/docs/answer/3093497"},
		{"Google Sheets – VLOOKUP", "https://support.google.com/docs/answer/3093318"},
		{"Minecraft – Double Chest (54 slots)", "https://minecraft.fandom.com/wiki/Chest"},
	}
	for _, d := range docs {
		f.SetCellValue(sheet, cell("A", row), d.Label)
		f.SetCellValue(sheet, cell("B", row), d.URL)
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), s.NumberStyle)
		f.SetCellStyle(sheet, cell("B", row), cell("B", row), s.LinkStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 32)
	f.SetColWidth(sheet, "B", "B", 48)

	return nil
}

// --- Shared helpers ---

func (e *ExcelExporter) writeHeaderRow(f *excelize.File, sheet string, values []string, style int) {
	for i, val := range values {
		c, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, c, val)
		f.SetCellStyle(sheet, c, c, style)
	}
}

func (e *ExcelExporter) freezeHeader(f *excelize.File, sheet string) {
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// addNonNegativeValidation restricts a cell range to whole numbers >= 0
func addNonNegativeValidation(f *excelize.File, sheet, sqref string) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = sqref
	if err := dv.SetRange(0, 0, excelize.DataValidationTypeWhole, excelize.DataValidationOperatorGreaterThanOrEqual); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid quantity", "Enter a whole number of 0 or more")
	return f.AddDataValidation(sheet, dv)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// --- Formula templates ---
// Formula text mirrors what a user would type into the target
// spreadsheet; this program never evaluates it.

// stackLookupFormula resolves the per-material stack size from REFS,
// falling back to the default
func stackLookupFormula(nameCell string, defaultSize int) string {
	return fmt.Sprintf("IFERROR(VLOOKUP(%s, %s!A:B, 2, FALSE), %d)", nameCell, SheetRefs, defaultSize)
}

// computedTotalFormula folds the user's on-hand corrections into the
// missing quantity, floored at zero
func computedTotalFormula(missingCell, userUnitsCell, userStacksCell, stackCell string) string {
	return fmt.Sprintf("MAX(0, %s+%s+%s*%s)", missingCell, userUnitsCell, userStacksCell, stackCell)
}

// stacksFormula is the ceiling division of units into stacks
func stacksFormula(totalCell, stackCell string) string {
	return fmt.Sprintf("CEILING(%s/%s, 1)", totalCell, stackCell)
}

// doubleChestsFormula is the ceiling division of stacks into double
// chests, special-casing zero so an empty requirement shows 0 chests
func doubleChestsFormula(totalCell, stacksCell string) string {
	return fmt.Sprintf("IF(%s=0, 0, CEILING(%s/%d, 1))", totalCell, stacksCell, doubleChestStacks)
}

// stacksAfterDoubleFormula is the stack remainder after filling whole
// double chests
func stacksAfterDoubleFormula(stacksCell string) string {
	return fmt.Sprintf("MOD(%s, %d)", stacksCell, doubleChestStacks)
}

// unitsAfterStackFormula is the unit remainder after filling whole stacks
func unitsAfterStackFormula(totalCell, stackCell string) string {
	return fmt.Sprintf("MOD(%s,%s)", totalCell, stackCell)
}
