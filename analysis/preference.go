package analysis

import (
	"github.com/salescope-org/salescope/engine"
	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// PREFERENCE — Global product popularity ranking
// ============================================================================

// Preference ranks products by total units sold across the entire dataset
// (no time filter) and returns the top N (default 10). Ties are broken by
// ascending product id.
func Preference(st *store.Store, opts ...Option) []RankedProduct {
	cfg := applyOptions(opts)

	grouped := engine.GroupReduce(st.AllSales(),
		func(s *store.Sale) string { return s.Product.ID },
		func() ProductTotals { return ProductTotals{} },
		func(t ProductTotals, s *store.Sale) ProductTotals {
			t.Quantity += s.Quantity
			t.Revenue += s.TotalPrice
			return t
		},
	)

	ranked := engine.RankAll(grouped, quantityMetric)
	return rankedProducts(engine.Top(ranked, cfg.topN))
}
