package catalog

import "monabazaar/internal/domain"

// Categories the storefront navigates by, in display order. "All" is a query
// sentinel, not a member.
var Categories = []string{"Sherwanis", "Kurtas", "Suits", "Lehengas"}

// allProducts is the fixed catalog. Never mutated after init.
var allProducts = []domain.Product{
	// Sherwanis
	{
		ID:            1,
		Name:          "Royal Blue Silk Sherwani",
		Price:         "₹12,999",
		OriginalPrice: "₹15,999",
		Rating:        4.8,
		Reviews:       24,
		Image:         "https://images.unsplash.com/photo-1506629905645-b178a0c90810?w=400&h=500&fit=crop",
		Badge:         "Bestseller",
		Sizes:         []string{"S", "M", "L", "XL", "XXL"},
		Colors:        []string{"Royal Blue", "Navy Blue", "Midnight Blue"},
		Category:      "Sherwanis",
		Description:   "Elegant royal blue silk sherwani with intricate embroidery work",
		InStock:       true,
		Fabric:        "Pure Silk",
		Occasion:      "Wedding",
		SizePricing: map[string]domain.PricePair{
			"S":   {Price: "₹12,999", OriginalPrice: "₹15,999"},
			"M":   {Price: "₹12,999", OriginalPrice: "₹15,999"},
			"L":   {Price: "₹13,499", OriginalPrice: "₹16,499"},
			"XL":  {Price: "₹13,999", OriginalPrice: "₹16,999"},
			"XXL": {Price: "₹14,499", OriginalPrice: "₹17,499"},
		},
	},
	{
		ID:            2,
		Name:          "Maroon Velvet Sherwani",
		Price:         "₹14,999",
		OriginalPrice: "₹18,999",
		Rating:        4.9,
		Reviews:       18,
		Image:         "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=500&fit=crop",
		Badge:         "New Arrival",
		Sizes:         []string{"M", "L", "XL"},
		Colors:        []string{"Maroon", "Burgundy", "Wine"},
		Category:      "Sherwanis",
		Description:   "Premium maroon velvet sherwani for special occasions",
		InStock:       true,
		Fabric:        "Velvet",
		Occasion:      "Wedding",
		SizePricing: map[string]domain.PricePair{
			"M":  {Price: "₹14,999", OriginalPrice: "₹18,999"},
			"L":  {Price: "₹15,499", OriginalPrice: "₹19,499"},
			"XL": {Price: "₹15,999", OriginalPrice: "₹19,999"},
		},
	},
	{
		ID:            9,
		Name:          "Golden Brocade Sherwani",
		Price:         "₹16,999",
		OriginalPrice: "₹21,999",
		Rating:        4.7,
		Reviews:       32,
		Image:         "https://images.unsplash.com/photo-1583030200306-33ca486d8e30?w=400&h=500&fit=crop",
		Badge:         "Premium",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"Gold", "Cream", "Champagne"},
		Category:      "Sherwanis",
		Description:   "Luxurious golden brocade sherwani with traditional patterns",
		InStock:       true,
		Fabric:        "Brocade",
		Occasion:      "Wedding",
	},
	{
		ID:            13,
		Name:          "Black Bandhgala Sherwani",
		Price:         "₹15,999",
		OriginalPrice: "₹19,999",
		Rating:        4.9,
		Reviews:       21,
		Image:         "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=500&fit=crop&sat=-100",
		Badge:         "Limited Edition",
		Sizes:         []string{"M", "L", "XL"},
		Colors:        []string{"Black", "Charcoal", "Midnight"},
		Category:      "Sherwanis",
		Description:   "Classic black bandhgala sherwani for formal events",
		InStock:       true,
		Fabric:        "Silk",
		Occasion:      "Formal",
	},

	// Kurtas
	{
		ID:            3,
		Name:          "Ivory Cotton Kurta Set",
		Price:         "₹2,999",
		OriginalPrice: "₹4,999",
		Rating:        4.7,
		Reviews:       45,
		Image:         "https://images.unsplash.com/photo-1622122201714-77da0ca8e5d2?w=400&h=500&fit=crop",
		Badge:         "Sale",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"Ivory", "White", "Cream"},
		Category:      "Kurtas",
		Description:   "Comfortable cotton kurta set perfect for daily wear",
		InStock:       true,
		Fabric:        "Cotton",
		Occasion:      "Casual",
	},
	{
		ID:            4,
		Name:          "Navy Blue Silk Kurta",
		Price:         "₹3,499",
		OriginalPrice: "₹4,999",
		Rating:        4.6,
		Reviews:       32,
		Image:         "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=400&h=500&fit=crop",
		Sizes:         []string{"M", "L", "XL", "XXL"},
		Colors:        []string{"Navy Blue", "Royal Blue", "Prussian Blue"},
		Category:      "Kurtas",
		Description:   "Premium silk kurta in elegant navy blue",
		InStock:       true,
		Fabric:        "Silk",
		Occasion:      "Festival",
	},
	{
		ID:            10,
		Name:          "Mint Green Kurta Pajama",
		Price:         "₹2,499",
		OriginalPrice: "₹3,999",
		Rating:        4.4,
		Reviews:       18,
		Image:         "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=400&h=500&fit=crop",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"Mint Green", "Sage", "Sea Green"},
		Category:      "Kurtas",
		Description:   "Fresh mint green kurta pajama set",
		InStock:       true,
		Fabric:        "Cotton",
		Occasion:      "Casual",
	},
	{
		ID:            14,
		Name:          "White Chikankari Kurta",
		Price:         "₹4,999",
		OriginalPrice: "₹6,999",
		Rating:        4.8,
		Reviews:       42,
		Image:         "https://images.unsplash.com/photo-1605518216938-7c31b7b14ad0?w=400&h=500&fit=crop",
		Badge:         "Handcrafted",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"White", "Off-White", "Cream"},
		Category:      "Kurtas",
		Description:   "Traditional white chikankari kurta with intricate embroidery",
		InStock:       true,
		Fabric:        "Cotton",
		Occasion:      "Festival",
	},

	// Suits
	{
		ID:            5,
		Name:          "Emerald Green Bandhgala Suit",
		Price:         "₹8,999",
		OriginalPrice: "₹12,999",
		Rating:        4.8,
		Reviews:       28,
		Image:         "https://images.unsplash.com/photo-1617127365659-c47fa864d8bc?w=400&h=500&fit=crop",
		Badge:         "Premium",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"Emerald", "Forest Green", "Jade"},
		Category:      "Suits",
		Description:   "Sophisticated emerald green bandhgala suit",
		InStock:       true,
		Fabric:        "Wool",
		Occasion:      "Wedding",
	},
	{
		ID:            6,
		Name:          "Charcoal Grey Nehru Suit",
		Price:         "₹7,999",
		OriginalPrice: "₹10,999",
		Rating:        4.5,
		Reviews:       21,
		Image:         "https://images.unsplash.com/photo-1564463836146-4e40c2e6e3b5?w=400&h=500&fit=crop",
		Sizes:         []string{"M", "L", "XL"},
		Colors:        []string{"Charcoal", "Slate", "Graphite"},
		Category:      "Suits",
		Description:   "Classic charcoal grey Nehru suit for formal occasions",
		InStock:       true,
		Fabric:        "Wool",
		Occasion:      "Formal",
	},
	{
		ID:            11,
		Name:          "Black Tuxedo Suit",
		Price:         "₹15,999",
		OriginalPrice: "₹19,999",
		Rating:        4.8,
		Reviews:       25,
		Image:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=500&fit=crop",
		Badge:         "Formal",
		Sizes:         []string{"S", "M", "L", "XL", "XXL"},
		Colors:        []string{"Black", "Midnight", "Charcoal"},
		Category:      "Suits",
		Description:   "Premium black tuxedo suit for special events",
		InStock:       true,
		Fabric:        "Wool",
		Occasion:      "Formal",
	},

	// Lehengas
	{
		ID:            7,
		Name:          "Bridal Red Lehenga",
		Price:         "₹24,999",
		OriginalPrice: "₹32,999",
		Rating:        4.9,
		Reviews:       15,
		Image:         "https://images.unsplash.com/photo-1583391733956-6c78276477e9?w=400&h=500&fit=crop",
		Badge:         "Bridal Special",
		Sizes:         []string{"XS", "S", "M", "L"},
		Colors:        []string{"Bridal Red", "Crimson", "Ruby"},
		Category:      "Lehengas",
		Description:   "Stunning bridal red lehenga with heavy embroidery",
		InStock:       true,
		Fabric:        "Silk",
		Occasion:      "Wedding",
	},
	{
		ID:            8,
		Name:          "Pink & Gold Party Lehenga",
		Price:         "₹18,999",
		OriginalPrice: "₹24,999",
		Rating:        4.7,
		Reviews:       22,
		Image:         "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=500&fit=crop&hue=350",
		Badge:         "Party Wear",
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []string{"Pink", "Rose Gold", "Blush"},
		Category:      "Lehengas",
		Description:   "Elegant pink and gold lehenga perfect for parties",
		InStock:       true,
		Fabric:        "Georgette",
		Occasion:      "Party",
	},
	{
		ID:            12,
		Name:          "Royal Purple Lehenga",
		Price:         "₹21,999",
		OriginalPrice: "₹28,999",
		Rating:        4.6,
		Reviews:       19,
		Image:         "https://images.unsplash.com/photo-1583391733975-b8701bd82cd4?w=400&h=500&fit=crop",
		Badge:         "Designer",
		Sizes:         []string{"XS", "S", "M", "L"},
		Colors:        []string{"Royal Purple", "Violet", "Plum"},
		Category:      "Lehengas",
		Description:   "Majestic royal purple designer lehenga",
		InStock:       true,
		Fabric:        "Silk",
		Occasion:      "Wedding",
	},
}
