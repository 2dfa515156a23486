package analysis

import (
	"errors"
	"testing"

	"github.com/salescope-org/salescope/store"
)

func TestDistributionSegmentation(t *testing.T) {
	// Both thresholds are inclusive to the middle bucket.
	st := newTestStore(t, []store.SaleRecord{
		sale("S1", "B1", "P4", 1, 500, "2024-06-10 09:00:00", 500),
		sale("S2", "B1", "P1", 1, 1000, "2024-06-10 10:00:00", 1000),
		sale("S3", "B2", "P1", 1, 3000, "2024-06-10 11:00:00", 3000),
		sale("S4", "B2", "P1", 1, 5000, "2024-06-10 12:00:00", 5000),
		sale("S5", "B3", "P1", 1, 7000, "2024-06-10 13:00:00", 7000),
	})

	rep, err := Distribution(st)
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	if rep.Below1000 != 1 {
		t.Errorf("below = %d, want 1", rep.Below1000)
	}
	if rep.Between1000And5000 != 3 {
		t.Errorf("between = %d, want 3", rep.Between1000And5000)
	}
	if rep.Above5000 != 1 {
		t.Errorf("above = %d, want 1", rep.Above5000)
	}
	if rep.Mean != 3300.0 {
		t.Errorf("mean = %v, want 3300.0", rep.Mean)
	}
	if len(rep.Values) != 5 {
		t.Errorf("raw values = %v, want 5 entries", rep.Values)
	}
}

func TestDistributionEmptyDataset(t *testing.T) {
	st := newTestStore(t, nil)

	rep, err := Distribution(st)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if rep != nil {
		t.Fatal("empty dataset must not produce a zero-filled report")
	}
}
