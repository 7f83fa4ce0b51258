package cart

import (
	cartsvc "github.com/shopsbuzz/shopsbuzz-backend/internal/cart"
)

type lineItemView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type cartView struct {
	Items     []lineItemView `json:"items"`
	Total     string         `json:"total"`
	ItemCount int            `json:"item_count"`
	LoggedIn  bool           `json:"logged_in"`
}

type receiptView struct {
	OrderID   string `json:"order_id"`
	Total     string `json:"total"`
	ItemCount int    `json:"item_count"`
}

func newCartView(snap *cartsvc.Snapshot) cartView {
	view := cartView{
		Items:     make([]lineItemView, 0, len(snap.Items)),
		Total:     snap.Total.StringFixed(2),
		ItemCount: snap.ItemCount,
		LoggedIn:  snap.LoggedIn,
	}
	for _, item := range snap.Items {
		view.Items = append(view.Items, lineItemView{
			ID:        item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			Price:     item.Price.StringFixed(2),
			Quantity:  item.Quantity,
			LineTotal: item.Subtotal().StringFixed(2),
		})
	}
	return view
}

func newReceiptView(result *cartsvc.CheckoutResult) receiptView {
	return receiptView{
		OrderID:   result.OrderID.String(),
		Total:     result.Total.StringFixed(2),
		ItemCount: result.ItemCount,
	}
}
