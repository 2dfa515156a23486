package render

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/salescope-org/salescope/analysis"
)

// ============================================================================
// EXCEL EXPORT — Report workbooks
// ============================================================================
// One sheet per branch (monthly) or one row per week (weekly). Sheet names
// are capped at Excel's 31-character limit.
// ============================================================================

// ExportMonthly writes a monthly report workbook to path: a summary sheet
// plus one product-sales sheet per branch.
func ExportMonthly(path string, rep *analysis.MonthlyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)
	if err := writeTableSheet(f, summary, MonthlySummaryTable(rep, "")); err != nil {
		return err
	}

	for _, id := range rep.BranchIDs {
		branch := rep.Branches[id]
		sheet := sheetName("Branch " + id)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("excel: new sheet %s: %w", sheet, err)
		}
		table := ProductRankingTable("Top-Selling Products", branch.TopSellingProducts)
		if err := writeTableSheet(f, sheet, table); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel: save %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("branches", len(rep.BranchIDs)).Msg("monthly workbook exported")
	return nil
}

// ExportWeekly writes a weekly report workbook to path: the week summary
// table plus a sheet with the across-weeks top-selling product list.
func ExportWeekly(path string, rep *analysis.WeeklyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Weeks"
	f.SetSheetName("Sheet1", summary)
	if err := writeTableSheet(f, summary, WeeklySummaryTable(rep, "")); err != nil {
		return err
	}

	products := "Top Products"
	if _, err := f.NewSheet(products); err != nil {
		return fmt.Errorf("excel: new sheet %s: %w", products, err)
	}
	table := ProductRankingTable("Top-Selling Products (All Weeks)", rep.TopAcrossWeeks)
	if err := writeTableSheet(f, products, table); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel: save %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("weeks", len(rep.Labels)).Msg("weekly workbook exported")
	return nil
}

func writeTableSheet(f *excelize.File, sheet string, table *TableData) error {
	header := make([]interface{}, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c.Label
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("excel: sheet %s header: %w", sheet, err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excel: sheet %s row %d: %w", sheet, i+2, err)
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return fmt.Errorf("excel: sheet %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func sheetName(name string) string {
	const maxSheetName = 31
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	return name
}
