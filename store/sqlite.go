package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// ============================================================================
// SQLITE SNAPSHOT — Persist a loaded dataset, restore it without the CSVs
// ============================================================================
// A snapshot is a plain SQLite file with one table per entity. Restoring
// goes back through Load, so snapshot data gets the same integrity checks
// as a fresh CSV load.
// ============================================================================

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS branches (
	branch_id TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	location  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS products (
	product_id TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	price      REAL NOT NULL,
	category   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS sales (
	sale_id     TEXT PRIMARY KEY,
	branch_id   TEXT NOT NULL,
	product_id  TEXT NOT NULL,
	quantity    INTEGER NOT NULL,
	total_price REAL NOT NULL,
	sold_at     TEXT NOT NULL,
	item_price  REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_branch ON sales(branch_id);
CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_id);
`

// SaveSnapshot writes the store's dataset to a SQLite file at path,
// replacing any rows a previous snapshot left there.
func (s *Store) SaveSnapshot(ctx context.Context, path string) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, snapshotSchema); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"sales", "products", "branches"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, b := range s.branches {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO branches (branch_id, name, location) VALUES (?, ?, ?)",
			b.ID, b.Name, b.Location); err != nil {
			return fmt.Errorf("insert branch %s: %w", b.ID, err)
		}
	}
	for _, p := range s.Products() {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO products (product_id, name, price, category) VALUES (?, ?, ?, ?)",
			p.ID, p.Name, p.Price, p.Category); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}
	var saleCount int
	for _, b := range s.branches {
		for _, sale := range b.sales {
			if _, err = tx.ExecContext(ctx,
				"INSERT INTO sales (sale_id, branch_id, product_id, quantity, total_price, sold_at, item_price) VALUES (?, ?, ?, ?, ?, ?, ?)",
				sale.ID, sale.BranchID, sale.Product.ID, sale.Quantity,
				sale.TotalPrice, sale.Date.Format(DateTimeLayout), sale.ItemPrice); err != nil {
				return fmt.Errorf("insert sale %s: %w", sale.ID, err)
			}
			saleCount++
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("branches", len(s.branches)).
		Int("products", len(s.products)).
		Int("sales", saleCount).
		Msg("snapshot saved")
	return nil
}

// LoadSnapshot reads a snapshot file into a fresh Store.
func LoadSnapshot(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer db.Close()

	branches, err := readBranches(ctx, db)
	if err != nil {
		return nil, err
	}
	products, err := readProducts(ctx, db)
	if err != nil {
		return nil, err
	}
	sales, err := readSales(ctx, db)
	if err != nil {
		return nil, err
	}

	st := New()
	if err := st.Load(branches, products, sales); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return st, nil
}

func readBranches(ctx context.Context, db *sql.DB) ([]BranchRecord, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT branch_id, name, location FROM branches ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("read branches: %w", err)
	}
	defer rows.Close()

	var out []BranchRecord
	for rows.Next() {
		var r BranchRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Location); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func readProducts(ctx context.Context, db *sql.DB) ([]ProductRecord, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT product_id, name, price, category FROM products ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	defer rows.Close()

	var out []ProductRecord
	for rows.Next() {
		var r ProductRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Price, &r.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func readSales(ctx context.Context, db *sql.DB) ([]SaleRecord, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT sale_id, branch_id, product_id, quantity, total_price, sold_at, item_price FROM sales ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("read sales: %w", err)
	}
	defer rows.Close()

	var out []SaleRecord
	for rows.Next() {
		var r SaleRecord
		var soldAt string
		if err := rows.Scan(&r.ID, &r.BranchID, &r.ProductID, &r.Quantity,
			&r.TotalPrice, &soldAt, &r.ItemPrice); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		r.Date, err = time.Parse(DateTimeLayout, soldAt)
		if err != nil {
			return nil, fmt.Errorf("sale %s: parse sold_at %q: %w", r.ID, soldAt, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
