package analysis

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salescope-org/salescope/engine"
	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// MONTHLY REPORT — Per-branch breakdown of one calendar month
// ============================================================================
// Every branch appears in the result, including branches with zero matching
// sales (all-zero fields), so callers can render a complete branch table.
// ============================================================================

// DailyKeyLayout formats the calendar-date keys of DailySales.
const DailyKeyLayout = "2006/01/02"

// MonthlyProductTotals accumulates one product's monthly figures.
// ItemPrice is the item price of whichever matching sale was processed last
// in load order — callers must not read it as an exact or averaged price.
type MonthlyProductTotals struct {
	Quantity  int
	Revenue   float64
	ItemPrice float64
}

// CategoryTotals accumulates quantity and revenue for one product category.
type CategoryTotals struct {
	Quantity int
	Revenue  float64
}

// DayTotals accumulates quantity and revenue for one calendar day.
type DayTotals struct {
	Quantity int
	Revenue  float64
}

// BranchMonthlyReport is one branch's slice of a monthly report.
//
// CustomerCount counts matching sales transactions, not distinct customers —
// the data model has no customer identity. The field keeps its historical
// name because downstream consumers depend on it.
type BranchMonthlyReport struct {
	BranchID   string
	BranchName string

	TotalSalesAmount        float64
	SalesVolume             int
	CustomerCount           int
	AverageTransactionValue float64

	// WeeklySales keys are ISO calendar week numbers (Monday-start, week 1
	// contains the year's first Thursday).
	WeeklySales map[int]float64

	ProductSales  map[string]MonthlyProductTotals
	CategorySales map[string]CategoryTotals

	// DailySales keys use DailyKeyLayout ("YYYY/MM/DD").
	DailySales map[string]DayTotals

	// HourlySales maps hour-of-day (0-23) to units sold.
	HourlySales map[int]int

	TopSellingProducts []RankedProduct
	LowSellingProducts []RankedProduct
}

// MonthlyReport maps branch id to that branch's report.
type MonthlyReport struct {
	Month time.Month
	Year  int

	Branches map[string]*BranchMonthlyReport

	// BranchIDs preserves store load order for stable output formatting.
	BranchIDs []string
}

// Monthly builds the per-branch report for one month of one year.
func Monthly(st *store.Store, month time.Month, year int, opts ...Option) *MonthlyReport {
	cfg := applyOptions(opts)

	report := &MonthlyReport{
		Month:    month,
		Year:     year,
		Branches: make(map[string]*BranchMonthlyReport),
	}

	for _, branch := range st.Branches() {
		var matching []*store.Sale
		for _, sale := range branch.Sales() {
			if sale.Date.Month() == month && sale.Date.Year() == year {
				matching = append(matching, sale)
			}
		}
		report.Branches[branch.ID] = buildBranchMonthly(branch, matching, cfg.topN)
		report.BranchIDs = append(report.BranchIDs, branch.ID)
	}

	log.Debug().
		Int("month", int(month)).
		Int("year", year).
		Int("branches", len(report.BranchIDs)).
		Msg("monthly report built")
	return report
}

func buildBranchMonthly(branch *store.Branch, sales []*store.Sale, topN int) *BranchMonthlyReport {
	r := &BranchMonthlyReport{
		BranchID:   branch.ID,
		BranchName: branch.Name,
	}

	for _, sale := range sales {
		r.TotalSalesAmount += sale.TotalPrice
		r.SalesVolume += sale.Quantity
		r.CustomerCount++
	}
	if r.CustomerCount > 0 {
		r.AverageTransactionValue = r.TotalSalesAmount / float64(r.CustomerCount)
	}

	weekly := engine.GroupReduce(sales,
		func(s *store.Sale) int { _, week := s.Date.ISOWeek(); return week },
		func() float64 { return 0 },
		func(total float64, s *store.Sale) float64 { return total + s.TotalPrice },
	)
	r.WeeklySales = weekly.Map()

	products := engine.GroupReduce(sales,
		func(s *store.Sale) string { return s.Product.ID },
		func() MonthlyProductTotals { return MonthlyProductTotals{} },
		func(t MonthlyProductTotals, s *store.Sale) MonthlyProductTotals {
			t.Quantity += s.Quantity
			t.Revenue += s.TotalPrice
			t.ItemPrice = s.ItemPrice // last-seen wins
			return t
		},
	)
	r.ProductSales = products.Map()

	categories := engine.GroupReduce(sales,
		func(s *store.Sale) string { return s.Product.Category },
		func() CategoryTotals { return CategoryTotals{} },
		func(t CategoryTotals, s *store.Sale) CategoryTotals {
			t.Quantity += s.Quantity
			t.Revenue += s.TotalPrice
			return t
		},
	)
	r.CategorySales = categories.Map()

	daily := engine.GroupReduce(sales,
		func(s *store.Sale) string { return s.Date.Format(DailyKeyLayout) },
		func() DayTotals { return DayTotals{} },
		func(t DayTotals, s *store.Sale) DayTotals {
			t.Quantity += s.Quantity
			t.Revenue += s.TotalPrice
			return t
		},
	)
	r.DailySales = daily.Map()

	hourly := engine.GroupReduce(sales,
		func(s *store.Sale) int { return s.Hour() },
		func() int { return 0 },
		func(qty int, s *store.Sale) int { return qty + s.Quantity },
	)
	r.HourlySales = hourly.Map()

	ranked := engine.RankAll(products, func(t MonthlyProductTotals) float64 {
		return float64(t.Quantity)
	})
	r.TopSellingProducts = rankedMonthlyProducts(engine.Top(ranked, topN))
	r.LowSellingProducts = rankedMonthlyProducts(engine.Bottom(ranked, topN))

	return r
}

func rankedMonthlyProducts(entries []engine.Ranked[string, MonthlyProductTotals]) []RankedProduct {
	out := make([]RankedProduct, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankedProduct{
			ProductID: e.Key,
			Quantity:  e.Value.Quantity,
			Revenue:   e.Value.Revenue,
		})
	}
	return out
}
