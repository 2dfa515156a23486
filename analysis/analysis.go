// Package analysis computes sales reports from a loaded store. Each analyzer
// is a plain function taking the store by reference and returning an
// immutable report value; nothing here mutates shared entities, so reports
// for different branches or periods can be computed in any order.
package analysis

import (
	"github.com/salescope-org/salescope/engine"
)

// ============================================================================
// SHARED REPORT TYPES
// ============================================================================

// ProductTotals accumulates quantity and revenue for one product.
type ProductTotals struct {
	Quantity int
	Revenue  float64
}

// RankedProduct is one entry of a top/bottom product ranking.
type RankedProduct struct {
	ProductID string
	Quantity  int
	Revenue   float64
}

// rankedProducts converts ranking entries into report form.
func rankedProducts(entries []engine.Ranked[string, ProductTotals]) []RankedProduct {
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

// quantityMetric ranks product groups by units sold.
func quantityMetric(t ProductTotals) float64 { return float64(t.Quantity) }

// ============================================================================
// OPTIONS
// ============================================================================

// Option configures an analyzer via functional options.
type Option func(*config)

type config struct {
	topN int
}

// WithTopN overrides how many products the top/bottom rankings keep.
func WithTopN(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.topN = n
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{topN: 10}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
