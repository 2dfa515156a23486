package render

import (
	"fmt"
	"sort"

	"github.com/salescope-org/salescope/analysis"
)

// ============================================================================
// TABLE BUILDERS — TableData from analysis reports
// ============================================================================

// MonthlySummaryTable renders one row per branch of a monthly report,
// in store load order.
func MonthlySummaryTable(rep *analysis.MonthlyReport, currency string) *TableData {
	columns := []Column{
		{Key: "branch", Label: "Branch", Type: "text", Align: "left"},
		{Key: "total", Label: "Total Sales", Type: "currency", Align: "right"},
		{Key: "volume", Label: "Sales Volume", Type: "number", Align: "right"},
		{Key: "customers", Label: "Customer Count", Type: "number", Align: "right"},
		{Key: "avg", Label: "Avg Transaction", Type: "currency", Align: "right"},
	}

	rows := make([][]string, 0, len(rep.BranchIDs))
	var grandTotal float64
	for _, id := range rep.BranchIDs {
		b := rep.Branches[id]
		rows = append(rows, []string{
			id,
			fmt.Sprintf("%.2f", b.TotalSalesAmount),
			FormatInt(b.SalesVolume),
			FormatInt(b.CustomerCount),
			fmt.Sprintf("%.2f", b.AverageTransactionValue),
		})
		grandTotal += b.TotalSalesAmount
	}

	return &TableData{
		Title:   fmt.Sprintf("Monthly Sales Report %d-%02d", rep.Year, int(rep.Month)),
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  fmt.Sprintf("Total (%d branches)", len(rows)),
			Values: map[string]string{"total": FormatCurrency(grandTotal, currency)},
		},
	}
}

// ProductRankingTable renders a top/bottom product list.
func ProductRankingTable(title string, products []analysis.RankedProduct) *TableData {
	columns := []Column{
		{Key: "product", Label: "Product ID", Type: "text", Align: "left"},
		{Key: "quantity", Label: "Sales Quantity", Type: "number", Align: "right"},
		{Key: "revenue", Label: "Revenue", Type: "currency", Align: "right"},
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ProductID,
			FormatInt(p.Quantity),
			fmt.Sprintf("%.2f", p.Revenue),
		})
	}
	return &TableData{Title: title, Columns: columns, Rows: rows}
}

// CategoryTable renders a branch's per-category breakdown, categories sorted
// alphabetically.
func CategoryTable(branch *analysis.BranchMonthlyReport) *TableData {
	columns := []Column{
		{Key: "category", Label: "Category", Type: "text", Align: "left"},
		{Key: "quantity", Label: "Quantity", Type: "number", Align: "right"},
		{Key: "revenue", Label: "Revenue", Type: "currency", Align: "right"},
	}

	categories := make([]string, 0, len(branch.CategorySales))
	for c := range branch.CategorySales {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		t := branch.CategorySales[c]
		rows = append(rows, []string{c, FormatInt(t.Quantity), fmt.Sprintf("%.2f", t.Revenue)})
	}
	return &TableData{
		Title:   fmt.Sprintf("Sales by Category: Branch %s", branch.BranchID),
		Columns: columns,
		Rows:    rows,
	}
}

// WeeklySummaryTable renders one row per week of a weekly report, in
// chronological label order.
func WeeklySummaryTable(rep *analysis.WeeklyReport, currency string) *TableData {
	columns := []Column{
		{Key: "week", Label: "Week", Type: "text", Align: "left"},
		{Key: "total", Label: "Total Sales", Type: "currency", Align: "right"},
		{Key: "customers", Label: "Customer Count", Type: "number", Align: "right"},
		{Key: "avg", Label: "Avg Transaction", Type: "currency", Align: "right"},
		{Key: "volume", Label: "Sales Volume", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(rep.Labels))
	var grandTotal float64
	for _, label := range rep.Labels {
		w := rep.Weeks[label]
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%.2f", w.TotalSalesAmount),
			FormatInt(w.CustomerCount),
			fmt.Sprintf("%.2f", w.AverageTransactionValue),
			FormatInt(w.TotalQuantity),
		})
		grandTotal += w.TotalSalesAmount
	}

	return &TableData{
		Title:   fmt.Sprintf("Weekly Sales Report %d", rep.Year),
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  fmt.Sprintf("Total (%d weeks)", len(rows)),
			Values: map[string]string{"total": FormatCurrency(grandTotal, currency)},
		},
	}
}

// PricingTable renders a product's price statistics.
func PricingTable(rep *analysis.PricingReport) *TableData {
	return &TableData{
		Title: "Product Price Analysis",
		Columns: []Column{
			{Key: "product", Label: "Product ID", Type: "text", Align: "left"},
			{Key: "avg", Label: "Average Selling Price", Type: "number", Align: "right"},
			{Key: "variation", Label: "Price Variation", Type: "number", Align: "right"},
		},
		Rows: [][]string{{
			rep.ProductID,
			fmt.Sprintf("%.2f", rep.AveragePrice),
			fmt.Sprintf("%.2f", rep.PriceVariation),
		}},
	}
}

// PreferenceTable renders the popular-products ranking.
func PreferenceTable(products []analysis.RankedProduct) *TableData {
	t := ProductRankingTable("Popular Products", products)
	t.Columns[1].Label = "Quantity Sold"
	t.Columns[2].Label = "Total Revenue"
	return t
}

// DistributionTable renders the sale-value segmentation.
func DistributionTable(rep *analysis.DistributionReport, currency string) *TableData {
	return &TableData{
		Title: "Purchase Value Segmentation",
		Columns: []Column{
			{Key: "segment", Label: "Segment", Type: "text", Align: "left"},
			{Key: "count", Label: "Purchases", Type: "number", Align: "right"},
		},
		Rows: [][]string{
			{fmt.Sprintf("Below %d %s", analysis.SegmentLow, currency), FormatInt(rep.Below1000)},
			{fmt.Sprintf("Between %d and %d %s", analysis.SegmentLow, analysis.SegmentHigh, currency), FormatInt(rep.Between1000And5000)},
			{fmt.Sprintf("Above %d %s", analysis.SegmentHigh, currency), FormatInt(rep.Above5000)},
		},
		Summary: &Summary{
			Label:  "Average Purchase Value",
			Values: map[string]string{"count": FormatCurrency(rep.Mean, currency)},
		},
	}
}
