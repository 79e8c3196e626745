// Package catalog holds the fixed product list and its query helpers. All
// helpers are total over their inputs: an unknown id or category yields an
// empty result, never an error.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"monabazaar/internal/domain"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// Sort criteria accepted by Sort. Anything else falls back to SortFeatured.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// All returns the full catalog in source order.
func All() []domain.Product {
	out := make([]domain.Product, len(allProducts))
	copy(out, allProducts)
	return out
}

// ByCategory returns products whose category equals cat, preserving source
// order. The "All" sentinel returns the whole catalog.
func ByCategory(cat string) []domain.Product {
	if cat == CategoryAll || cat == "" {
		return All()
	}
	var out []domain.Product
	for _, p := range allProducts {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a newly ordered copy of products; the input is not mutated.
// Price criteria compare the digits parsed out of the formatted price string;
// ties keep their relative input order.
func Sort(products []domain.Product, criterion string) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch criterion {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return ParsePrice(out[i].Price) < ParsePrice(out[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return ParsePrice(out[i].Price) > ParsePrice(out[j].Price)
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	default: // featured: badged products first, then rating descending
		sort.SliceStable(out, func(i, j int) bool {
			bi, bj := out[i].Badge != "", out[j].Badge != ""
			if bi != bj {
				return bi
			}
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}

// ByID returns the product with the given id, or nil if absent.
func ByID(id int) *domain.Product {
	for i := range allProducts {
		if allProducts[i].ID == id {
			p := allProducts[i]
			return &p
		}
	}
	return nil
}

// ByIDString coerces a textual id and looks it up; malformed input is treated
// as not found.
func ByIDString(id string) *domain.Product {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil
	}
	return ByID(n)
}

// Pricing resolves the display price pair for a product and an optionally
// selected size. Without a size, or without an override for that size, the
// base pair applies.
func Pricing(p domain.Product, size string) domain.PricePair {
	if size == "" || p.SizePricing == nil {
		return domain.PricePair{Price: p.Price, OriginalPrice: p.OriginalPrice}
	}
	if pair, ok := p.SizePricing[size]; ok {
		return pair
	}
	return domain.PricePair{Price: p.Price, OriginalPrice: p.OriginalPrice}
}

// ParsePrice strips everything but digits from a formatted price string and
// parses the remainder. "₹12,999" -> 12999. No digits parses to 0.
func ParsePrice(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, _ := strconv.Atoi(b.String())
	return n
}
