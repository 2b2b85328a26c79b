package domain

// Product is a purchasable gold package in the catalog
type Product struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount int     `json:"amount"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Badge  string  `json:"badge,omitempty"`
}

// CartItem is a product line in the cart. Quantity is always >= 1;
// there is at most one line per product id.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// NewProductBadge is attached to every product created through the admin console.
const NewProductBadge = "NEW"

// NewProductImage is the placeholder image for admin-created products.
const NewProductImage = "https://images.unsplash.com/photo-1595152433602-0da764f69324?w=400"

// SeedCatalog returns the built-in catalog used when no catalog has been
// persisted yet. Callers get a fresh slice and may mutate it freely.
func SeedCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Starter Pack", Amount: 100, Price: 89, Image: "https://images.unsplash.com/photo-1595152433602-0da764f69324?auto=format&fit=crop&q=80&w=400", Badge: "STARTER"},
		{ID: 2, Name: "Guerilla Gold", Amount: 500, Price: 429, Image: "https://images.unsplash.com/photo-1614850523459-c2f4c699c52e?auto=format&fit=crop&q=80&w=400", Badge: "HIT"},
		{ID: 3, Name: "Special Ops", Amount: 1000, Price: 799, Image: "https://images.unsplash.com/photo-1533035353720-f1c6a75cd8ab?auto=format&fit=crop&q=80&w=400", Badge: "-10%"},
		{ID: 4, Name: "Veteran Cache", Amount: 2500, Price: 1899, Image: "https://images.unsplash.com/photo-1518544830919-094119864703?auto=format&fit=crop&q=80&w=400", Badge: "VALUE"},
		{ID: 5, Name: "Legendary Loot", Amount: 5000, Price: 3499, Image: "https://images.unsplash.com/photo-1589410182470-3d779b5c234a?auto=format&fit=crop&q=80&w=400", Badge: "VIP"},
		{ID: 6, Name: "CHLENHUNTER MMEGA", Amount: 15000, Price: 8999, Image: "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?auto=format&fit=crop&q=80&w=400", Badge: "MAX"},
	}
}
