// Package store holds the validated Branch, Product and Sale entities for
// one analysis session. A Store is populated by a single Load call and is
// treated as read-only by every analyzer; reloading replaces the whole
// dataset. There is no process-wide instance — construct a Store and pass it
// to the analyzers explicitly.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DateTimeLayout is the wire format of sale timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

// ============================================================================
// ERRORS
// ============================================================================

var (
	// ErrProductNotFound reports a lookup for a product id the store has
	// never loaded.
	ErrProductNotFound = errors.New("product not found")

	// ErrUnknownProduct reports a sale referencing a product id absent from
	// the loaded products. Fatal at load time.
	ErrUnknownProduct = errors.New("sale references unknown product")

	// ErrUnknownBranch reports a sale referencing a branch id with no
	// matching branch. Fatal at load time.
	ErrUnknownBranch = errors.New("sale references unknown branch")

	// ErrInvalidSale reports a sale failing basic field validation.
	ErrInvalidSale = errors.New("invalid sale record")
)

// ============================================================================
// ENTITIES
// ============================================================================

// Product is an immutable catalog entry. Price is the reference unit price,
// which may differ from the per-sale item price.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Category string
}

// Sale is one transaction. Product is resolved at load time — a sale with an
// unresolvable product reference never makes it into the store.
type Sale struct {
	ID         string
	BranchID   string
	Product    *Product
	Quantity   int
	TotalPrice float64
	Date       time.Time
	ItemPrice  float64
}

// Hour returns the hour-of-day (0-23) the sale happened.
func (s *Sale) Hour() int { return s.Date.Hour() }

// Branch is a retail location owning its sales in load order
// (load order, not chronological).
type Branch struct {
	ID       string
	Name     string
	Location string

	sales []*Sale
}

// Sales returns the branch's sales. Callers must treat the slice as
// read-only.
func (b *Branch) Sales() []*Sale { return b.sales }

// ============================================================================
// INPUT RECORDS
// ============================================================================
// Plain loader output — already parsed and typed, validated here on Load.

// BranchRecord is a raw branch row.
type BranchRecord struct {
	ID       string
	Name     string
	Location string
}

// ProductRecord is a raw product row.
type ProductRecord struct {
	ID       string
	Name     string
	Price    float64
	Category string
}

// SaleRecord is a raw sale row. Date is already parsed from DateTimeLayout.
type SaleRecord struct {
	ID         string
	BranchID   string
	ProductID  string
	Quantity   int
	TotalPrice float64
	Date       time.Time
	ItemPrice  float64
}

// ============================================================================
// STORE
// ============================================================================

// Store is the in-memory holder of one loaded dataset.
type Store struct {
	branches    []*Branch
	branchIndex map[string]*Branch
	products    map[string]*Product
	productIDs  []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		branchIndex: make(map[string]*Branch),
		products:    make(map[string]*Product),
	}
}

// Load replaces the store's contents with a new dataset. Entities are built
// in dependency order: branches, then products, then sales (sales need both
// a resolved product and an owning branch). On any integrity failure the
// store keeps its previous contents — a partially valid dataset is never
// presented as loaded.
func (s *Store) Load(branches []BranchRecord, products []ProductRecord, sales []SaleRecord) error {
	next := &Store{
		branchIndex: make(map[string]*Branch, len(branches)),
		products:    make(map[string]*Product, len(products)),
	}

	for _, r := range branches {
		b := &Branch{ID: r.ID, Name: r.Name, Location: r.Location}
		next.branches = append(next.branches, b)
		next.branchIndex[b.ID] = b
	}

	for _, r := range products {
		p := &Product{ID: r.ID, Name: r.Name, Price: r.Price, Category: r.Category}
		next.products[p.ID] = p
		next.productIDs = append(next.productIDs, p.ID)
	}

	for _, r := range sales {
		if err := validateSale(r); err != nil {
			return err
		}
		product, ok := next.products[r.ProductID]
		if !ok {
			return fmt.Errorf("sale %s: product %s: %w", r.ID, r.ProductID, ErrUnknownProduct)
		}
		branch, ok := next.branchIndex[r.BranchID]
		if !ok {
			return fmt.Errorf("sale %s: branch %s: %w", r.ID, r.BranchID, ErrUnknownBranch)
		}
		branch.sales = append(branch.sales, &Sale{
			ID:         r.ID,
			BranchID:   r.BranchID,
			Product:    product,
			Quantity:   r.Quantity,
			TotalPrice: r.TotalPrice,
			Date:       r.Date,
			ItemPrice:  r.ItemPrice,
		})
	}

	*s = *next

	log.Debug().
		Int("branches", len(s.branches)).
		Int("products", len(s.products)).
		Int("sales", len(sales)).
		Msg("dataset loaded")
	return nil
}

func validateSale(r SaleRecord) error {
	if r.Quantity <= 0 {
		return fmt.Errorf("sale %s: quantity %d: %w", r.ID, r.Quantity, ErrInvalidSale)
	}
	if r.TotalPrice < 0 {
		return fmt.Errorf("sale %s: total price %.2f: %w", r.ID, r.TotalPrice, ErrInvalidSale)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("sale %s: zero timestamp: %w", r.ID, ErrInvalidSale)
	}
	return nil
}

// Branches returns all branches in load order.
func (s *Store) Branches() []*Branch { return s.branches }

// Branch looks up a branch by id.
func (s *Store) Branch(id string) (*Branch, bool) {
	b, ok := s.branchIndex[id]
	return b, ok
}

// Product looks up a product by id.
func (s *Store) Product(id string) (*Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

// Products returns all products in load order.
func (s *Store) Products() []*Product {
	out := make([]*Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, s.products[id])
	}
	return out
}

// AllSales returns every sale across all branches, branch load order first,
// then per-branch load order.
func (s *Store) AllSales() []*Sale {
	var out []*Sale
	for _, b := range s.branches {
		out = append(out, b.sales...)
	}
	return out
}

// EachSale calls fn for every sale, in the same order as AllSales.
func (s *Store) EachSale(fn func(b *Branch, sale *Sale)) {
	for _, b := range s.branches {
		for _, sale := range b.sales {
			fn(b, sale)
		}
	}
}
