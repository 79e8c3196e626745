package domain

// Product is one entry in the compiled-in catalog. Prices are display strings
// with the currency symbol baked in ("₹12,999"); the rest of the system treats
// them as opaque text and parses digits out only for totals and sorting.
type Product struct {
	ID            int                  `json:"id"`
	Name          string               `json:"name"`
	Price         string               `json:"price"`
	OriginalPrice string               `json:"originalPrice,omitempty"`
	Rating        float64              `json:"rating"`
	Reviews       int                  `json:"reviews"`
	Image         string               `json:"image"`
	Badge         string               `json:"badge,omitempty"`
	Sizes         []string             `json:"sizes,omitempty"`
	Colors        []string             `json:"colors,omitempty"`
	Category      string               `json:"category"`
	Description   string               `json:"description,omitempty"`
	InStock       bool                 `json:"inStock"`
	Fabric        string               `json:"fabric,omitempty"`
	Occasion      string               `json:"occasion,omitempty"`
	SizePricing   map[string]PricePair `json:"sizePricing,omitempty"`
}

// PricePair is a price/original-price couple, either a product's base pair or
// a per-size override.
type PricePair struct {
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice,omitempty"`
}

// CartLine is one (product, size) entry in a cart. Price is copied at add time
// and not recomputed if the catalog changes later.
type CartLine struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
}

// WishlistItem is a product summary saved by id alone.
type WishlistItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     string  `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
}
