package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salescope-org/salescope/analysis"
	"github.com/salescope-org/salescope/auth"
	"github.com/salescope-org/salescope/config"
	"github.com/salescope-org/salescope/helpers"
	"github.com/salescope-org/salescope/render"
	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// SALESCOPE CLI — Retail sales analytics over branch transaction CSVs
// ============================================================================

const version = "0.3.0"

// output bundles everything a report run produced, for JSON output.
type output struct {
	Report any                   `json:"report"`
	Tables []*render.TableData   `json:"tables,omitempty"`
	Charts []*render.ChartConfig `json:"charts,omitempty"`
}

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	configPath := flag.String("config", "", "Path to YAML config file")
	branchesPath := flag.String("branches", "", "Branches CSV (overrides config)")
	salesPath := flag.String("sales", "", "Sales CSV (overrides config)")
	productsPath := flag.String("products", "", "Products CSV (overrides config)")
	fromSnapshot := flag.String("from-snapshot", "", "Load dataset from a SQLite snapshot instead of CSVs")
	saveSnapshot := flag.String("save-snapshot", "", "Write the loaded dataset to a SQLite snapshot")
	report := flag.String("report", "", "Report: monthly, weekly, pricing, preference, distribution")
	month := flag.Int("month", int(time.Now().Month()), "Month (1-12) for the monthly report")
	year := flag.Int("year", time.Now().Year(), "Year for the monthly/weekly reports")
	productID := flag.String("product", "", "Product id for the pricing report")
	username := flag.String("user", "", "Login username (required when auth is configured)")
	password := flag.String("pass", "", "Login password")
	format := flag.String("format", "json", "Output format: json, pretty, text, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	excelFile := flag.String("excel", "", "Also export the monthly/weekly report as an Excel workbook")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Salescope: retail sales analytics

Usage:
  salescope --config salescope.yaml --report monthly --month 6 --year 2024 --format text
  salescope --report weekly --year 2024 --excel weekly.xlsx
  salescope --report pricing --product P-104
  salescope --report distribution --format pretty
  salescope --report monthly --month 6 --year 2024 --save-snapshot data.sqlite
  salescope --from-snapshot data.sqlite --report preference

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  json      Full JSON output (default)
  pretty    Pretty-printed JSON
  text      Plain-text tables
  csv       First report table as CSV (ready for Sheets/Excel)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("salescope %s\n", version)
		os.Exit(0)
	}

	// ── Logging ───────────────────────────────────────────────────────────
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	// ── Config ────────────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if *branchesPath != "" {
		cfg.Data.Branches = *branchesPath
	}
	if *salesPath != "" {
		cfg.Data.Sales = *salesPath
	}
	if *productsPath != "" {
		cfg.Data.Products = *productsPath
	}

	if *report == "" {
		fmt.Fprintln(os.Stderr, "Error: --report is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Login gate ────────────────────────────────────────────────────────
	if cfg.Auth.Username != "" {
		gate := auth.NewGate(cfg.Auth.Username, cfg.Auth.Password)
		user, err := gate.Login(*username, *password)
		if err != nil {
			fatalf("login failed: %v", err)
		}
		defer gate.Logout(user)
	}

	// ── Dataset ───────────────────────────────────────────────────────────
	ctx := context.Background()

	var st *store.Store
	if *fromSnapshot != "" {
		loaded, err := store.LoadSnapshot(ctx, *fromSnapshot)
		if err != nil {
			fatalf("load snapshot: %v", err)
		}
		st = loaded
	} else {
		st = store.New()
		if err := helpers.LoadDataset(st, cfg.Data.Branches, cfg.Data.Sales, cfg.Data.Products); err != nil {
			fatalf("load dataset: %v", err)
		}
	}

	if *saveSnapshot != "" {
		if err := st.SaveSnapshot(ctx, *saveSnapshot); err != nil {
			fatalf("save snapshot: %v", err)
		}
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Report dispatch ───────────────────────────────────────────────────
	var out output
	topN := analysis.WithTopN(cfg.TopN)

	switch *report {
	case "monthly":
		rep := analysis.Monthly(st, time.Month(*month), *year, topN)
		out.Report = rep
		out.Tables = append(out.Tables, render.MonthlySummaryTable(rep, cfg.Currency))
		for _, id := range rep.BranchIDs {
			branch := rep.Branches[id]
			out.Tables = append(out.Tables,
				render.ProductRankingTable("Top-Selling Products: Branch "+id, branch.TopSellingProducts),
				render.ProductRankingTable("Low-Selling Products: Branch "+id, branch.LowSellingProducts),
				render.CategoryTable(branch),
			)
		}
		if c := render.DailySalesChart(rep); c != nil {
			out.Charts = append(out.Charts, c)
		}
		if c := render.HourlySalesChart(rep); c != nil {
			out.Charts = append(out.Charts, c)
		}
		if *excelFile != "" {
			if err := render.ExportMonthly(*excelFile, rep); err != nil {
				fatalf("%v", err)
			}
		}

	case "weekly":
		rep := analysis.Weekly(st, *year, topN)
		out.Report = rep
		out.Tables = append(out.Tables, render.WeeklySummaryTable(rep, cfg.Currency))
		for _, label := range rep.Labels {
			week := rep.Weeks[label]
			out.Tables = append(out.Tables,
				render.ProductRankingTable("Top-Selling Products: "+label, week.TopSellingProducts),
				render.ProductRankingTable("Low-Selling Products: "+label, week.LowSellingProducts),
			)
		}
		out.Charts = append(out.Charts, render.WeeklyTrendCharts(rep)...)
		if c := render.ProductBarChart("Top-Selling Products (Quantity)", rep.TopAcrossWeeks); c != nil {
			out.Charts = append(out.Charts, c)
		}
		if c := render.ProductBarChart("Low-Selling Products (Quantity)", rep.LowAcrossWeeks); c != nil {
			out.Charts = append(out.Charts, c)
		}
		if *excelFile != "" {
			if err := render.ExportWeekly(*excelFile, rep); err != nil {
				fatalf("%v", err)
			}
		}

	case "pricing":
		if *productID == "" {
			fatalf("--product is required for the pricing report")
		}
		rep, err := analysis.Pricing(st, *productID)
		if err != nil {
			fatalf("%v", err)
		}
		out.Report = rep
		out.Tables = append(out.Tables, render.PricingTable(rep))
		if c := render.Histogram("Price Variation Distribution", rep.Prices, 30); c != nil {
			out.Charts = append(out.Charts, c)
		}

	case "preference":
		top := analysis.Preference(st, topN)
		out.Report = top
		out.Tables = append(out.Tables, render.PreferenceTable(top))
		if c := render.ProductBarChart("Top 10 Popular Products", top); c != nil {
			out.Charts = append(out.Charts, c)
		}

	case "distribution":
		rep, err := analysis.Distribution(st)
		if err != nil {
			fatalf("%v", err)
		}
		out.Report = rep
		out.Tables = append(out.Tables, render.DistributionTable(rep, cfg.Currency))
		if c := render.Histogram("Sales Distribution", rep.Values, 20); c != nil {
			out.Charts = append(out.Charts, c)
		}

	default:
		fatalf("unknown report %q", *report)
	}

	// ── Output ────────────────────────────────────────────────────────────
	if err := writeOutput(writer, &out, *format); err != nil {
		fatalf("write output: %v", err)
	}
}

func writeOutput(w io.Writer, out *output, format string) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(out)
	case "pretty":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text":
		for _, t := range out.Tables {
			fmt.Fprintln(w, render.RenderText(t))
		}
		return nil
	case "csv":
		if len(out.Tables) == 0 {
			return fmt.Errorf("no table data to write")
		}
		return writeTableCSV(w, out.Tables[0])
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeTableCSV(w io.Writer, t *render.TableData) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
