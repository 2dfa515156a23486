package store

import (
	"errors"
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func testRecords(t *testing.T) ([]BranchRecord, []ProductRecord, []SaleRecord) {
	t.Helper()
	branches := []BranchRecord{
		{ID: "B1", Name: "Colombo", Location: "Colombo 03"},
		{ID: "B2", Name: "Kandy", Location: "Kandy Town"},
	}
	products := []ProductRecord{
		{ID: "P1", Name: "Rice 5kg", Price: 1200, Category: "Groceries"},
		{ID: "P2", Name: "Tea 200g", Price: 450, Category: "Beverages"},
	}
	sales := []SaleRecord{
		{ID: "S1", BranchID: "B1", ProductID: "P1", Quantity: 2, TotalPrice: 2400, Date: mustTime(t, "2024-06-10 09:15:00"), ItemPrice: 1200},
		{ID: "S2", BranchID: "B1", ProductID: "P2", Quantity: 1, TotalPrice: 450, Date: mustTime(t, "2024-06-11 17:40:00"), ItemPrice: 450},
		{ID: "S3", BranchID: "B2", ProductID: "P1", Quantity: 3, TotalPrice: 3600, Date: mustTime(t, "2024-06-12 12:00:00"), ItemPrice: 1200},
	}
	return branches, products, sales
}

func TestLoadAssignsSalesToBranches(t *testing.T) {
	st := New()
	branches, products, sales := testRecords(t)
	if err := st.Load(branches, products, sales); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := st.Branches()
	if len(got) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(got))
	}

	b1, ok := st.Branch("B1")
	if !ok {
		t.Fatal("branch B1 missing")
	}
	if len(b1.Sales()) != 2 {
		t.Fatalf("B1 should own 2 sales, got %d", len(b1.Sales()))
	}
	for _, sale := range b1.Sales() {
		if sale.BranchID != "B1" {
			t.Errorf("sale %s assigned to B1 but references %s", sale.ID, sale.BranchID)
		}
	}

	// Sales resolve to shared Product instances.
	p1, _ := st.Product("P1")
	if b1.Sales()[0].Product != p1 {
		t.Error("sale should reference the loaded product instance")
	}
}

func TestLoadRejectsUnknownProduct(t *testing.T) {
	st := New()
	branches, products, _ := testRecords(t)
	sales := []SaleRecord{
		{ID: "S1", BranchID: "B1", ProductID: "NOPE", Quantity: 1, TotalPrice: 100, Date: mustTime(t, "2024-06-10 09:15:00"), ItemPrice: 100},
	}

	err := st.Load(branches, products, sales)
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
	if len(st.Branches()) != 0 {
		t.Fatal("failed load must not populate the store")
	}
}

func TestLoadRejectsUnknownBranch(t *testing.T) {
	st := New()
	branches, products, _ := testRecords(t)
	sales := []SaleRecord{
		{ID: "S1", BranchID: "NOPE", ProductID: "P1", Quantity: 1, TotalPrice: 100, Date: mustTime(t, "2024-06-10 09:15:00"), ItemPrice: 100},
	}

	if err := st.Load(branches, products, sales); !errors.Is(err, ErrUnknownBranch) {
		t.Fatalf("expected ErrUnknownBranch, got %v", err)
	}
}

func TestLoadValidatesSaleFields(t *testing.T) {
	branches, products, _ := testRecords(t)
	date := mustTime(t, "2024-06-10 09:15:00")

	cases := []struct {
		name string
		sale SaleRecord
	}{
		{"zero quantity", SaleRecord{ID: "S1", BranchID: "B1", ProductID: "P1", Quantity: 0, TotalPrice: 100, Date: date, ItemPrice: 100}},
		{"negative total", SaleRecord{ID: "S1", BranchID: "B1", ProductID: "P1", Quantity: 1, TotalPrice: -1, Date: date, ItemPrice: 100}},
		{"zero timestamp", SaleRecord{ID: "S1", BranchID: "B1", ProductID: "P1", Quantity: 1, TotalPrice: 100, ItemPrice: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := New()
			if err := st.Load(branches, products, []SaleRecord{tc.sale}); !errors.Is(err, ErrInvalidSale) {
				t.Fatalf("expected ErrInvalidSale, got %v", err)
			}
		})
	}
}

func TestReloadReplacesDataset(t *testing.T) {
	st := New()
	branches, products, sales := testRecords(t)
	if err := st.Load(branches, products, sales); err != nil {
		t.Fatalf("first load: %v", err)
	}

	replacement := []BranchRecord{{ID: "B9", Name: "Galle", Location: "Galle Fort"}}
	if err := st.Load(replacement, []ProductRecord{{ID: "P9", Name: "Soap", Price: 80, Category: "Household"}}, nil); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if _, ok := st.Branch("B1"); ok {
		t.Error("B1 should be gone after reload")
	}
	if _, ok := st.Product("P1"); ok {
		t.Error("P1 should be gone after reload")
	}
	if len(st.AllSales()) != 0 {
		t.Errorf("no sales should survive reload, got %d", len(st.AllSales()))
	}
	if _, ok := st.Branch("B9"); !ok {
		t.Error("B9 missing after reload")
	}
}

func TestAllSalesAndEachSaleAgree(t *testing.T) {
	st := New()
	branches, products, sales := testRecords(t)
	if err := st.Load(branches, products, sales); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	all := st.AllSales()
	if len(all) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(all))
	}

	var visited int
	st.EachSale(func(b *Branch, sale *Sale) {
		if all[visited] != sale {
			t.Errorf("EachSale order diverges from AllSales at %d", visited)
		}
		if sale.BranchID != b.ID {
			t.Errorf("sale %s visited under branch %s", sale.ID, b.ID)
		}
		visited++
	})
	if visited != 3 {
		t.Fatalf("EachSale visited %d sales, want 3", visited)
	}
}

func TestSaleHour(t *testing.T) {
	s := &Sale{Date: time.Date(2024, 6, 10, 17, 40, 0, 0, time.UTC)}
	if s.Hour() != 17 {
		t.Fatalf("Hour() = %d, want 17", s.Hour())
	}
}

func TestProductsPreserveLoadOrder(t *testing.T) {
	st := New()
	branches, products, _ := testRecords(t)
	if err := st.Load(branches, products, nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := st.Products()
	if len(got) != 2 || got[0].ID != "P1" || got[1].ID != "P2" {
		t.Fatalf("products out of load order: %v", got)
	}
}
