package store

import (
	"sync"

	"monabazaar/internal/domain"
)

// Wishlist is a set of product summaries keyed by product id, kept in
// insertion order. In-memory only; unlike the auth session it is not
// mirrored anywhere.
type Wishlist struct {
	mu    sync.Mutex
	items []domain.WishlistItem
}

func NewWishlist() *Wishlist { return &Wishlist{} }

// Add appends the item unless its id is already present; re-adding is a
// silent no-op.
func (w *Wishlist) Add(item domain.WishlistItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, it := range w.items {
		if it.ProductID == item.ProductID {
			return
		}
	}
	w.items = append(w.items, item)
}

// Remove drops the item with the given id; no-op if absent.
func (w *Wishlist) Remove(productID int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, it := range w.items {
		if it.ProductID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
}

func (w *Wishlist) Contains(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, it := range w.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Items returns a copy in insertion order.
func (w *Wishlist) Items() []domain.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}
