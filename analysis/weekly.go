package analysis

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salescope-org/salescope/engine"
	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// WEEKLY REPORT — Monday-aligned week buckets across all branches
// ============================================================================
// A week here is a literal Monday-to-Sunday date range, rendered as
// "2024-06-10 - 2024-06-16". This is NOT the ISO week numbering the monthly
// report uses — two sales in the same ISO week always share a bucket, but
// the bucket key is the date span, not the week number.
// ============================================================================

// WeekKeyLayout formats the start and end dates of a week label.
const WeekKeyLayout = "2006-01-02"

// WeekSummary aggregates one Monday-aligned week.
//
// CustomerCount counts distinct sale ids within the week — the same
// transaction-count semantics as the monthly report, kept under its
// historical name.
type WeekSummary struct {
	Label string
	Start time.Time
	End   time.Time

	TotalSalesAmount        float64
	CustomerCount           int
	TotalQuantity           int
	AverageTransactionValue float64

	Products map[string]ProductTotals

	TopSellingProducts []RankedProduct
	LowSellingProducts []RankedProduct
}

// WeeklyReport maps week labels to summaries for one year.
type WeeklyReport struct {
	Year int

	Weeks map[string]*WeekSummary

	// Labels holds week labels sorted ascending — chronological, since the
	// label starts with the ISO date of the week's Monday.
	Labels []string

	// TopAcrossWeeks and LowAcrossWeeks concatenate every week's top/bottom
	// ranking in label order. Concatenation, not re-aggregation: a product
	// appearing in several weeks appears several times, once per week.
	TopAcrossWeeks []RankedProduct
	LowAcrossWeeks []RankedProduct
}

type weekAccumulator struct {
	start    time.Time
	end      time.Time
	total    float64
	quantity int
	saleIDs  map[string]struct{}
	products map[string]ProductTotals
}

// Weekly buckets one year's sales across all branches into Monday-aligned
// weeks.
func Weekly(st *store.Store, year int, opts ...Option) *WeeklyReport {
	cfg := applyOptions(opts)

	var matching []*store.Sale
	for _, branch := range st.Branches() {
		for _, sale := range branch.Sales() {
			if sale.Date.Year() == year {
				matching = append(matching, sale)
			}
		}
	}

	grouped := engine.GroupReduce(matching,
		func(s *store.Sale) string {
			start := WeekStart(s.Date)
			return start.Format(WeekKeyLayout) + " - " + start.AddDate(0, 0, 6).Format(WeekKeyLayout)
		},
		func() *weekAccumulator {
			return &weekAccumulator{
				saleIDs:  make(map[string]struct{}),
				products: make(map[string]ProductTotals),
			}
		},
		func(acc *weekAccumulator, s *store.Sale) *weekAccumulator {
			if acc.start.IsZero() {
				acc.start = WeekStart(s.Date)
				acc.end = acc.start.AddDate(0, 0, 6)
			}
			acc.total += s.TotalPrice
			acc.quantity += s.Quantity
			acc.saleIDs[s.ID] = struct{}{}
			t := acc.products[s.Product.ID]
			t.Quantity += s.Quantity
			t.Revenue += s.TotalPrice
			acc.products[s.Product.ID] = t
			return acc
		},
	)

	report := &WeeklyReport{
		Year:  year,
		Weeks: make(map[string]*WeekSummary, grouped.Len()),
	}
	report.Labels = append(report.Labels, grouped.Keys()...)
	sort.Strings(report.Labels)

	for _, label := range report.Labels {
		acc, _ := grouped.Get(label)
		week := &WeekSummary{
			Label:            label,
			Start:            acc.start,
			End:              acc.end,
			TotalSalesAmount: acc.total,
			CustomerCount:    len(acc.saleIDs),
			TotalQuantity:    acc.quantity,
			Products:         acc.products,
		}
		if week.CustomerCount > 0 {
			week.AverageTransactionValue = week.TotalSalesAmount / float64(week.CustomerCount)
		}

		ranked := engine.RankMap(acc.products, quantityMetric)
		week.TopSellingProducts = rankedProducts(engine.Top(ranked, cfg.topN))
		week.LowSellingProducts = rankedProducts(engine.Bottom(ranked, cfg.topN))

		report.Weeks[label] = week
		report.TopAcrossWeeks = append(report.TopAcrossWeeks, week.TopSellingProducts...)
		report.LowAcrossWeeks = append(report.LowAcrossWeeks, week.LowSellingProducts...)
	}

	log.Debug().
		Int("year", year).
		Int("weeks", len(report.Labels)).
		Int("sales", len(matching)).
		Msg("weekly report built")
	return report
}

// WeekStart returns the Monday of the week containing t, at midnight in t's
// location.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
