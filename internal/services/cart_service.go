package services

import (
	"errors"
	"sync"

	"monabazaar/internal/catalog"
	"monabazaar/internal/domain"
	"monabazaar/internal/store"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSizeRequired    = errors.New("size must be selected")
	ErrSizeNotOffered  = errors.New("size not offered for this product")
)

// CartService hands out one Cart per browser session id.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*store.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*store.Cart)}
}

// Cart returns the session's cart, creating it on first touch.
func (s *CartService) Cart(sid string) *store.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sid]
	if !ok {
		c = store.NewCart()
		s.carts[sid] = c
	}
	return c
}

// AddProduct resolves the product, applies size-conditional pricing, and adds
// the line to the session's cart. Adding without a size is rejected; size
// labels the product does not carry are rejected too.
func (s *CartService) AddProduct(sid string, productID int, size, color string, qty int) (domain.CartLine, error) {
	if size == "" {
		return domain.CartLine{}, ErrSizeRequired
	}
	p := catalog.ByID(productID)
	if p == nil {
		return domain.CartLine{}, ErrProductNotFound
	}
	offered := false
	for _, sz := range p.Sizes {
		if sz == size {
			offered = true
			break
		}
	}
	if !offered {
		return domain.CartLine{}, ErrSizeNotOffered
	}

	pair := catalog.Pricing(*p, size)
	line := domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     pair.Price, // captured now; later catalog changes don't reprice the line
		Image:     p.Image,
		Size:      size,
		Color:     color,
		Quantity:  qty,
		Category:  p.Category,
	}
	s.Cart(sid).AddItem(line)
	return line, nil
}
