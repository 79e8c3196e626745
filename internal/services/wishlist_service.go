package services

import (
	"sync"

	"monabazaar/internal/catalog"
	"monabazaar/internal/domain"
	"monabazaar/internal/store"
)

// WishlistService hands out one Wishlist per browser session id.
type WishlistService struct {
	mu    sync.Mutex
	lists map[string]*store.Wishlist
}

func NewWishlistService() *WishlistService {
	return &WishlistService{lists: make(map[string]*store.Wishlist)}
}

func (s *WishlistService) Wishlist(sid string) *store.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.lists[sid]
	if !ok {
		w = store.NewWishlist()
		s.lists[sid] = w
	}
	return w
}

// SaveProduct snapshots the product summary into the session's wishlist.
// Saving an id already present stays a no-op.
func (s *WishlistService) SaveProduct(sid string, productID int) (domain.WishlistItem, error) {
	p := catalog.ByID(productID)
	if p == nil {
		return domain.WishlistItem{}, ErrProductNotFound
	}
	item := domain.WishlistItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Rating:    p.Rating,
	}
	s.Wishlist(sid).Add(item)
	return item, nil
}
