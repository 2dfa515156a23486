package analysis

import (
	"fmt"

	"github.com/salescope-org/salescope/engine"
	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// PRICING — Average selling price and price variation for one product
// ============================================================================

// PricingReport holds the price statistics of a single product. Prices is
// the raw per-sale item price list, kept for histogram rendering.
type PricingReport struct {
	ProductID   string
	ProductName string

	// AveragePrice is the mean item price across all sales of the product,
	// 0.0 when the product was never sold.
	AveragePrice float64

	// PriceVariation is the population standard deviation (divisor N) of the
	// item prices, 0.0 for one or zero sales.
	PriceVariation float64

	Prices []float64
}

// Pricing computes price statistics for one product id. The product must
// exist in the store — an unknown id fails with store.ErrProductNotFound
// before any sales are scanned, whether or not any sale references it.
func Pricing(st *store.Store, productID string) (*PricingReport, error) {
	product, ok := st.Product(productID)
	if !ok {
		return nil, fmt.Errorf("pricing: product %s: %w", productID, store.ErrProductNotFound)
	}

	var prices []float64
	st.EachSale(func(_ *store.Branch, sale *store.Sale) {
		if sale.Product.ID == productID {
			prices = append(prices, sale.ItemPrice)
		}
	})

	return &PricingReport{
		ProductID:      product.ID,
		ProductName:    product.Name,
		AveragePrice:   engine.Mean(prices),
		PriceVariation: engine.PopStdDev(prices),
		Prices:         prices,
	}, nil
}
