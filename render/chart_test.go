package render

import (
	"testing"
	"time"

	"github.com/salescope-org/salescope/analysis"
)

func TestDailySalesChart(t *testing.T) {
	rep := analysis.Monthly(fixtureStore(t), time.June, 2024)
	chart := DailySalesChart(rep)
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if chart.ChartType != "line" {
		t.Errorf("chart type = %q", chart.ChartType)
	}
	// Both branches sold something, so two series.
	if len(chart.Series) != 2 {
		t.Fatalf("series = %d, want 2", len(chart.Series))
	}
	if chart.Series[0].Name != "Branch B1" {
		t.Errorf("series name = %q", chart.Series[0].Name)
	}
	b1 := chart.Series[0].Data
	if len(b1) != 1 || b1[0].Label != "2024/06/10" || b1[0].Value != 3 {
		t.Errorf("B1 points = %+v", b1)
	}
	if len(chart.Colors) != 2 {
		t.Errorf("colors = %d", len(chart.Colors))
	}
}

func TestDailySalesChartEmptyMonth(t *testing.T) {
	rep := analysis.Monthly(fixtureStore(t), time.January, 2024)
	if chart := DailySalesChart(rep); chart != nil {
		t.Errorf("expected nil chart for empty month, got %+v", chart)
	}
}

func TestHourlySalesChart(t *testing.T) {
	rep := analysis.Monthly(fixtureStore(t), time.June, 2024)
	chart := HourlySalesChart(rep)
	if chart == nil {
		t.Fatal("expected a chart")
	}
	// B1 sold at 09 and 11.
	b1 := chart.Series[0].Data
	if len(b1) != 2 || b1[0].Label != "09" || b1[0].Value != 2 || b1[1].Label != "11" {
		t.Errorf("B1 hourly points = %+v", b1)
	}
}

func TestWeeklyTrendCharts(t *testing.T) {
	rep := analysis.Weekly(fixtureStore(t), 2024)
	charts := WeeklyTrendCharts(rep)
	if len(charts) != 3 {
		t.Fatalf("charts = %d, want 3", len(charts))
	}
	totals := charts[0]
	if len(totals.Series) != 1 || len(totals.Series[0].Data) != 1 {
		t.Fatalf("totals series = %+v", totals.Series)
	}
	p := totals.Series[0].Data[0]
	if p.Label != "2024-06-10 - 2024-06-16" || p.Value != 4050 {
		t.Errorf("totals point = %+v", p)
	}
	if charts[2].Series[0].Data[0].Value != 4 { // units across the week
		t.Errorf("volume point = %+v", charts[2].Series[0].Data[0])
	}
}

func TestProductBarChart(t *testing.T) {
	chart := ProductBarChart("Top Products", []analysis.RankedProduct{
		{ProductID: "P1", Quantity: 3},
		{ProductID: "P2", Quantity: 1},
	})
	if chart.ChartType != "bar" {
		t.Errorf("chart type = %q", chart.ChartType)
	}
	if len(chart.Series[0].Data) != 2 || chart.Series[0].Data[0].Value != 3 {
		t.Errorf("points = %+v", chart.Series[0].Data)
	}
	if ProductBarChart("empty", nil) != nil {
		t.Error("expected nil for empty ranking")
	}
}

func TestHistogram(t *testing.T) {
	chart := Histogram("Values", []float64{0, 2, 4, 6, 8, 10}, 5)
	if chart == nil {
		t.Fatal("expected a chart")
	}
	if len(chart.Series[0].Data) != 5 {
		t.Fatalf("bins = %d", len(chart.Series[0].Data))
	}
	// Width 2: bins [0,2) [2,4) [4,6) [6,8) [8,10]; 10 clamps to the last.
	want := []float64{1, 1, 1, 1, 2}
	for i, p := range chart.Series[0].Data {
		if p.Value != want[i] {
			t.Errorf("bin %d = %v, want %v", i, p.Value, want[i])
		}
	}
	if chart.Series[0].Data[0].Label != "0.00-2.00" {
		t.Errorf("bin label = %q", chart.Series[0].Data[0].Label)
	}
}

func TestHistogramDegenerate(t *testing.T) {
	if Histogram("empty", nil, 5) != nil {
		t.Error("expected nil for no values")
	}
	chart := Histogram("flat", []float64{7, 7, 7}, 4)
	if chart.Series[0].Data[0].Value != 3 {
		t.Errorf("flat values should land in the first bin: %+v", chart.Series[0].Data)
	}
}
