package cart

import "github.com/shopspring/decimal"

// Product is the minimal catalog shape the store accepts. Presentation
// fields (image, description) never reach the cart.
type Product struct {
	ID       int
	Name     string
	Category string
	Price    decimal.Decimal
}

// LineItem is one product/quantity pair in the cart. The JSON shape is the
// persisted record format, so field tags are part of the storage contract.
type LineItem struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price x quantity for the line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
