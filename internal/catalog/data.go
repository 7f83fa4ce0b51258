package catalog

import "github.com/shopspring/decimal"

// Page names served by the storefront.
const (
	PageFashion     = "fashion"
	PageGroceries   = "groceries"
	PageAccessories = "accessories"
)

type page struct {
	name     string
	products []Product
}

func usd(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic("catalog: bad price literal " + value)
	}
	return d
}

func pageData() []page {
	return []page{
		{
			name: PageFashion,
			products: []Product{
				{ID: 101, Name: "Floral Summer Dress", Category: "women", Price: usd("49.99"), Image: "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
				{ID: 102, Name: "Premium Cotton Tee", Category: "men", Price: usd("24.99"), Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
				{ID: 103, Name: "Velvet Evening Gown", Category: "women", Price: usd("129.00"), Image: "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
				{ID: 104, Name: "Urban Denim Jacket", Category: "men", Price: usd("75.50"), Image: "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
				{ID: 105, Name: "Red Sport Runners", Category: "footwear", Price: usd("89.99"), Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
				{ID: 106, Name: "Linen Beach Shirt", Category: "men", Price: usd("35.00"), Image: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
				{ID: 107, Name: "Leather Tote Bag", Category: "women", Price: usd("150.00"), Image: "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
				{ID: 108, Name: "Chic Blazer", Category: "women", Price: usd("65.00"), Image: "https://images.unsplash.com/photo-1551028719-ac66e624ecd6?w=500&auto=format&fit=crop&q=60", Page: PageFashion},
			},
		},
		{
			name: PageGroceries,
			products: []Product{
				{ID: 1, Name: "Fresh Oranges", Category: "fruits", Price: usd("100"), Description: "Sweet and juicy", Image: "images/oranges.jpg", Page: PageGroceries},
				{ID: 4, Name: "Fresh Tomatoes", Category: "fruits", Price: usd("40"), Description: "Roma tomatoes", Image: "images/tomato.jpg", Page: PageGroceries},
				{ID: 7, Name: "Fresh Avocados", Category: "fruits", Price: usd("180"), Description: "Ripe Hass avocados", Image: "images/avocado.jpg", Page: PageGroceries},
				{ID: 10, Name: "Fresh Carrots", Category: "fruits", Price: usd("20"), Description: "Organic carrots", Image: "images/carrots.jpg", Page: PageGroceries},
				{ID: 2, Name: "Organic Milk", Category: "dairy", Price: usd("40"), Description: "Fresh Whole Milk", Image: "images/milk.jpg", Page: PageGroceries},
				{ID: 5, Name: "Farm Eggs", Category: "dairy", Price: usd("60"), Description: "Free range (12pk)", Image: "images/eggs.jpg", Page: PageGroceries},
				{ID: 8, Name: "Greek Yogurt", Category: "dairy", Price: usd("30"), Description: "Plain Yogurt", Image: "images/yogurt.jpg", Page: PageGroceries},
				{ID: 3, Name: "Whole Wheat Bread", Category: "bakery", Price: usd("50"), Description: "Freshly Baked", Image: "images/bread.jpg", Page: PageGroceries},
				{ID: 9, Name: "Croissants", Category: "bakery", Price: usd("60"), Description: "Butter Croissants", Image: "images/crossiant.jpg", Page: PageGroceries},
				{ID: 6, Name: "Basmati Rice", Category: "pantry", Price: usd("200"), Description: "Aged Rice (5kg)", Image: "images/rice.jpg", Page: PageGroceries},
				{ID: 11, Name: "Olive Oil", Category: "pantry", Price: usd("190"), Description: "Extra Virgin", Image: "images/oliveoil.jpg", Page: PageGroceries},
				{ID: 12, Name: "Orange Juice", Category: "beverages", Price: usd("80"), Description: "100% Juice", Image: "images/orange_juice.jpg", Page: PageGroceries},
			},
		},
		{
			name: PageAccessories,
			products: []Product{
				{ID: 101, Name: "Michael Kors Watch MK3897", Category: "accessories", Price: usd("11216.00"), Page: PageAccessories},
			},
		},
	}
}
