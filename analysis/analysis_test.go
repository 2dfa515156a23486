package analysis

import (
	"testing"
	"time"

	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// SHARED FIXTURES
// ============================================================================

var fixtureBranches = []store.BranchRecord{
	{ID: "B1", Name: "Colombo", Location: "Colombo 03"},
	{ID: "B2", Name: "Kandy", Location: "Kandy Town"},
	{ID: "B3", Name: "Galle", Location: "Galle Fort"},
}

var fixtureProducts = []store.ProductRecord{
	{ID: "P1", Name: "Rice 5kg", Price: 1200, Category: "Groceries"},
	{ID: "P2", Name: "Tea 200g", Price: 450, Category: "Beverages"},
	{ID: "P3", Name: "Milk 1L", Price: 380, Category: "Beverages"},
	{ID: "P4", Name: "Soap", Price: 80, Category: "Household"},
	{ID: "P5", Name: "Sugar 1kg", Price: 260, Category: "Groceries"},
}

func sale(id, branchID, productID string, qty int, total float64, date string, itemPrice float64) store.SaleRecord {
	parsed, err := time.Parse(store.DateTimeLayout, date)
	if err != nil {
		panic("bad fixture date " + date)
	}
	return store.SaleRecord{
		ID:         id,
		BranchID:   branchID,
		ProductID:  productID,
		Quantity:   qty,
		TotalPrice: total,
		Date:       parsed,
		ItemPrice:  itemPrice,
	}
}

func newTestStore(t *testing.T, sales []store.SaleRecord) *store.Store {
	t.Helper()
	st := store.New()
	if err := st.Load(fixtureBranches, fixtureProducts, sales); err != nil {
		t.Fatalf("fixture load failed: %v", err)
	}
	return st
}
