package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/salescope-org/salescope/analysis"
)

// ============================================================================
// CHART BUILDERS — ChartConfig from analysis reports
// ============================================================================

// DailySalesChart builds a line chart with one series per branch, plotting
// units sold per calendar day of the report month.
func DailySalesChart(rep *analysis.MonthlyReport) *ChartConfig {
	config := &ChartConfig{
		ChartType:  "line",
		Title:      "Daily Sales Report for All Branches",
		XAxis:      "Date",
		YAxis:      "Sales Quantity",
		ShowLegend: true,
		ShowGrid:   true,
	}

	for _, id := range rep.BranchIDs {
		branch := rep.Branches[id]
		if len(branch.DailySales) == 0 {
			continue
		}

		dates := make([]string, 0, len(branch.DailySales))
		for d := range branch.DailySales {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		points := make([]ChartPoint, 0, len(dates))
		for _, d := range dates {
			points = append(points, ChartPoint{Label: d, Value: float64(branch.DailySales[d].Quantity)})
		}
		config.Series = append(config.Series, ChartSeries{
			Name: "Branch " + id,
			Data: points,
		})
	}

	if len(config.Series) == 0 {
		return nil
	}
	config.Colors = assignColors(len(config.Series))
	return config
}

// HourlySalesChart builds a line chart with one series per branch, plotting
// units sold per hour of day.
func HourlySalesChart(rep *analysis.MonthlyReport) *ChartConfig {
	config := &ChartConfig{
		ChartType:  "line",
		Title:      "Hourly Sales Report for All Branches",
		XAxis:      "Hour",
		YAxis:      "Sales Quantity",
		ShowLegend: true,
		ShowGrid:   true,
	}

	for _, id := range rep.BranchIDs {
		branch := rep.Branches[id]
		if len(branch.HourlySales) == 0 {
			continue
		}

		hours := make([]int, 0, len(branch.HourlySales))
		for h := range branch.HourlySales {
			hours = append(hours, h)
		}
		sort.Ints(hours)

		points := make([]ChartPoint, 0, len(hours))
		for _, h := range hours {
			points = append(points, ChartPoint{Label: fmt.Sprintf("%02d", h), Value: float64(branch.HourlySales[h])})
		}
		config.Series = append(config.Series, ChartSeries{
			Name: "Branch " + id,
			Data: points,
		})
	}

	if len(config.Series) == 0 {
		return nil
	}
	config.Colors = assignColors(len(config.Series))
	return config
}

// WeeklyTrendCharts builds the three weekly trend line charts: total sales,
// average transaction value, and sales volume over the year's weeks.
func WeeklyTrendCharts(rep *analysis.WeeklyReport) []*ChartConfig {
	if len(rep.Labels) == 0 {
		return nil
	}

	totals := make([]ChartPoint, 0, len(rep.Labels))
	averages := make([]ChartPoint, 0, len(rep.Labels))
	volumes := make([]ChartPoint, 0, len(rep.Labels))
	for _, label := range rep.Labels {
		w := rep.Weeks[label]
		totals = append(totals, ChartPoint{Label: label, Value: w.TotalSalesAmount})
		averages = append(averages, ChartPoint{Label: label, Value: w.AverageTransactionValue})
		volumes = append(volumes, ChartPoint{Label: label, Value: float64(w.TotalQuantity)})
	}

	line := func(title, yAxis string, points []ChartPoint) *ChartConfig {
		return &ChartConfig{
			ChartType: "line",
			Title:     title,
			XAxis:     "Weeks",
			YAxis:     yAxis,
			Series:    []ChartSeries{{Name: title, Data: points}},
			Colors:    assignColors(1),
			ShowGrid:  true,
		}
	}

	return []*ChartConfig{
		line("Total Sales Amount Over Time", "Total Sales Amount", totals),
		line("Average Transaction Value Over Time", "Average Transaction Value", averages),
		line("Sales Volume Over Time", "Sales Volume", volumes),
	}
}

// ProductBarChart builds a bar chart of product quantities from a ranking.
func ProductBarChart(title string, products []analysis.RankedProduct) *ChartConfig {
	if len(products) == 0 {
		return nil
	}
	points := make([]ChartPoint, 0, len(products))
	for _, p := range products {
		points = append(points, ChartPoint{Label: p.ProductID, Value: float64(p.Quantity)})
	}
	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      "Product ID",
		YAxis:      "Quantity Sold",
		Series:     []ChartSeries{{Name: title, Data: points}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// Histogram buckets raw values into equal-width bins for histogram
// rendering. Returns nil for empty input.
func Histogram(title string, values []float64, bins int) *ChartConfig {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		counts[0] = len(values)
	} else {
		for _, v := range values {
			idx := int(math.Floor((v - lo) / width))
			if idx >= bins { // hi falls in the last bin
				idx = bins - 1
			}
			counts[idx]++
		}
	}

	points := make([]ChartPoint, 0, bins)
	for i, c := range counts {
		start := lo + float64(i)*width
		points = append(points, ChartPoint{
			Label: fmt.Sprintf("%.2f-%.2f", start, start+width),
			Value: float64(c),
		})
	}

	return &ChartConfig{
		ChartType: "histogram",
		Title:     title,
		XAxis:     "Value",
		YAxis:     "Frequency",
		Series:    []ChartSeries{{Name: title, Data: points}},
		Colors:    assignColors(1),
		ShowGrid:  true,
	}
}
