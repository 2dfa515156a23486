package analysis

import (
	"errors"

	"github.com/salescope-org/salescope/engine"
	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// DISTRIBUTION — Sale-value segmentation across the entire dataset
// ============================================================================

// ErrNoData reports an empty sale collection. An empty dataset is signalled
// explicitly instead of returning a zero-filled report.
var ErrNoData = errors.New("no sales data")

// Segmentation thresholds in dataset currency units. Both boundary values
// fall in the middle bucket.
const (
	SegmentLow  = 1000
	SegmentHigh = 5000
)

// DistributionReport segments every sale's total price into three fixed
// value buckets. Values is the raw total-price list, kept for histogram
// rendering.
type DistributionReport struct {
	Mean float64

	Below1000          int
	Between1000And5000 int
	Above5000          int

	Values []float64
}

// Distribution computes the sale-value distribution over the whole dataset.
// Returns ErrNoData when no sales are loaded.
func Distribution(st *store.Store) (*DistributionReport, error) {
	var values []float64
	st.EachSale(func(_ *store.Branch, sale *store.Sale) {
		values = append(values, sale.TotalPrice)
	})
	if len(values) == 0 {
		return nil, ErrNoData
	}

	report := &DistributionReport{
		Mean:   engine.Mean(values),
		Values: values,
	}
	for _, v := range values {
		switch {
		case v < SegmentLow:
			report.Below1000++
		case v <= SegmentHigh:
			report.Between1000And5000++
		default:
			report.Above5000++
		}
	}
	return report, nil
}
