package cart

// addItemRequest carries the product being added. The storefront posts the
// full product record rather than a bare id so the cart never has to reach
// back into the catalog.
type addItemRequest struct {
	ProductID int    `json:"product_id" validate:"required,min=1"`
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category"`
	Price     string `json:"price" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// changeQuantityRequest nudges a line's quantity by a signed delta.
type changeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}
