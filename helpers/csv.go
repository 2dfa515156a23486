// Package helpers loads the branches/products/sales CSV files into a store.
package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salescope-org/salescope/store"
)

// ============================================================================
// CSV LOADER — Header-mapped parsing of the three dataset files
// ============================================================================
// Columns are resolved by header name ("Branch ID" and "branch_id" both
// work), so column order in the files does not matter. Parsing errors carry
// the file role and 1-based row number.
// ============================================================================

// LoadDataset reads the three CSV files and loads them into st in dependency
// order (branches, products, sales). On any error the store keeps its
// previous contents.
func LoadDataset(st *store.Store, branchesPath, salesPath, productsPath string) error {
	branches, err := parseFile(branchesPath, "branches", ParseBranches)
	if err != nil {
		return err
	}
	products, err := parseFile(productsPath, "products", ParseProducts)
	if err != nil {
		return err
	}
	sales, err := parseFile(salesPath, "sales", ParseSales)
	if err != nil {
		return err
	}

	if err := st.Load(branches, products, sales); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	log.Info().
		Int("branches", len(branches)).
		Int("products", len(products)).
		Int("sales", len(sales)).
		Msg("dataset files loaded")
	return nil
}

func parseFile[T any](path, role string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s file: %w", role, err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s file %s: %w", role, path, err)
	}
	return records, nil
}

// ParseBranches parses branch rows: branch_id, name, location.
func ParseBranches(r io.Reader) ([]store.BranchRecord, error) {
	var out []store.BranchRecord
	err := eachRow(r, []string{"branch_id", "name", "location"}, func(row int, get func(string) string) error {
		out = append(out, store.BranchRecord{
			ID:       get("branch_id"),
			Name:     get("name"),
			Location: get("location"),
		})
		return nil
	})
	return out, err
}

// ParseProducts parses product rows: product_id, name, price, category.
func ParseProducts(r io.Reader) ([]store.ProductRecord, error) {
	var out []store.ProductRecord
	err := eachRow(r, []string{"product_id", "name", "price", "category"}, func(row int, get func(string) string) error {
		price, err := strconv.ParseFloat(get("price"), 64)
		if err != nil {
			return fmt.Errorf("row %d: price %q: %w", row, get("price"), err)
		}
		out = append(out, store.ProductRecord{
			ID:       get("product_id"),
			Name:     get("name"),
			Price:    price,
			Category: get("category"),
		})
		return nil
	})
	return out, err
}

// ParseSales parses sale rows: sale_id, branch_id, product_id, quantity,
// total_price, date, item_price. Dates use store.DateTimeLayout.
func ParseSales(r io.Reader) ([]store.SaleRecord, error) {
	cols := []string{"sale_id", "branch_id", "product_id", "quantity", "total_price", "date", "item_price"}
	var out []store.SaleRecord
	err := eachRow(r, cols, func(row int, get func(string) string) error {
		quantity, err := strconv.Atoi(get("quantity"))
		if err != nil {
			return fmt.Errorf("row %d: quantity %q: %w", row, get("quantity"), err)
		}
		totalPrice, err := strconv.ParseFloat(get("total_price"), 64)
		if err != nil {
			return fmt.Errorf("row %d: total_price %q: %w", row, get("total_price"), err)
		}
		itemPrice, err := strconv.ParseFloat(get("item_price"), 64)
		if err != nil {
			return fmt.Errorf("row %d: item_price %q: %w", row, get("item_price"), err)
		}
		date, err := time.Parse(store.DateTimeLayout, get("date"))
		if err != nil {
			return fmt.Errorf("row %d: date %q: %w", row, get("date"), err)
		}
		out = append(out, store.SaleRecord{
			ID:         get("sale_id"),
			BranchID:   get("branch_id"),
			ProductID:  get("product_id"),
			Quantity:   quantity,
			TotalPrice: totalPrice,
			Date:       date,
			ItemPrice:  itemPrice,
		})
		return nil
	})
	return out, err
}

// eachRow reads a header-mapped CSV, requiring every column in required,
// and hands each data row to fn with a by-name cell getter.
func eachRow(r io.Reader, required []string, fn func(row int, get func(string) string) error) error {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[toSnakeCase(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("missing column %q", col)
		}
	}

	row := 1
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		get := func(col string) string {
			i := index[col]
			if i >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[i])
		}
		if err := fn(row, get); err != nil {
			return err
		}
	}
	return nil
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
