// Opens a generated workbook and spot-checks sheet layout and
// per-row formulas. Handy after changing the emitter.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

func main() {
	filename := "output/forgematica_materials_sheets.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	fmt.Printf("=== WORKBOOK CHECK: %s ===\n\n", filename)

	for _, sheet := range []string{"TOTALS_ALL", "MISSING_ONLY", "REFS"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
			fmt.Printf("❌ MISSING SHEET: %s\n", sheet)
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Sheet %-13s %d rows\n", sheet, len(rows))
	}

	// Every data row on MISSING_ONLY must carry the lookup and the
	// four derived formulas
	rows, err := f.GetRows("MISSING_ONLY")
	if err != nil {
		log.Fatal(err)
	}

	problems := 0
	for r := 2; r <= len(rows); r++ {
		for _, col := range []string{"E", "F", "G", "H", "I", "J"} {
			cell := fmt.Sprintf("%s%d", col, r)
			formula, err := f.GetCellFormula("MISSING_ONLY", cell)
			if err != nil || strings.TrimSpace(formula) == "" {
				fmt.Printf("❌ NO FORMULA at MISSING_ONLY!%s\n", cell)
				problems++
			}
		}
	}

	if problems == 0 {
		fmt.Println("\n✅ All formula cells populated")
	} else {
		fmt.Printf("\n❌ %d formula cells missing\n", problems)
		os.Exit(1)
	}
}
