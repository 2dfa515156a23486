// Package salescope provides retail sales analytics over per-branch
// transaction datasets.
//
// Usage:
//
//	st := store.New()
//	if err := helpers.LoadDataset(st, "branches.csv", "sales.csv", "products.csv"); err != nil {
//	    // dataset is invalid, nothing was loaded
//	}
//
//	report := analysis.Monthly(st, time.June, 2024)
//	table := render.MonthlySummaryTable(report, "LKR")
//
// The store holds one immutable dataset per analysis session. The analysis
// package computes monthly, weekly, pricing, preference and distribution
// reports from it; the render package turns reports into render-ready
// tables, chart configs and Excel workbooks.
//
// All computation is local and synchronous — the module never calls any
// external service.
package salescope
