package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
)

// Product is one read-only catalog entry. The cart consumes only id, name,
// category and price; the rest is presentation data for the grid.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Page        string          `json:"page"`
}

// Sort orders accepted by List.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// CategoryAll passes every product through the category filter.
const CategoryAll = "all"

// ListInput captures the browse knobs a storefront page exposes.
type ListInput struct {
	Page     string
	Category string
	Sort     string
}

// Catalog serves the hardcoded per-page product lists. It is immutable
// after construction; all accessors return copies.
type Catalog struct {
	pages map[string][]Product
	order []string
}

// New builds the catalog from the built-in page data.
func New() *Catalog {
	c := &Catalog{pages: make(map[string][]Product)}
	for _, page := range pageData() {
		c.order = append(c.order, page.name)
		c.pages[page.name] = page.products
	}
	return c
}

// Pages returns the page names in display order.
func (c *Catalog) Pages() []string {
	pages := make([]string, len(c.order))
	copy(pages, c.order)
	return pages
}

// List returns a page's products, optionally filtered by category and
// sorted by price. An empty or "all" category passes everything.
func (c *Catalog) List(input ListInput) ([]Product, error) {
	products, ok := c.pages[input.Page]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown catalog page")
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	filtered := make([]Product, 0, len(products))
	for _, product := range products {
		if category != "" && category != CategoryAll && !strings.EqualFold(product.Category, category) {
			continue
		}
		filtered = append(filtered, product)
	}

	switch input.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[j].Price.LessThan(filtered[i].Price)
		})
	case "":
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort order")
	}

	return filtered, nil
}

// Find returns the product with the given id on the given page.
func (c *Catalog) Find(page string, id int) (*Product, error) {
	products, ok := c.pages[page]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown catalog page")
	}
	for _, product := range products {
		if product.ID == id {
			found := product
			return &found, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// Search matches the query as a case-insensitive substring of the product
// name or category, across one page or all pages when page is empty.
func (c *Catalog) Search(query, page string) ([]Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Product{}, nil
	}

	var scope []string
	if page == "" {
		scope = c.order
	} else {
		if _, ok := c.pages[page]; !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown catalog page")
		}
		scope = []string{page}
	}

	results := []Product{}
	for _, name := range scope {
		for _, product := range c.pages[name] {
			if strings.Contains(strings.ToLower(product.Name), query) ||
				strings.Contains(strings.ToLower(product.Category), query) {
				results = append(results, product)
			}
		}
	}
	return results, nil
}
