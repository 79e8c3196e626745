// Package store holds the in-memory state containers behind one browser
// session: the cart multiset and the wishlist set. Both are guarded by a
// mutex since concurrent requests may share a session.
package store

import (
	"sync"

	"monabazaar/internal/catalog"
	"monabazaar/internal/domain"
)

// DefaultColor is the sentinel used when the shopper never picked a color.
const DefaultColor = "Default"

// Cart is a multiset of lines keyed by (product id, size). The price on a
// line is the formatted string captured at add time.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartLine
	open  bool
}

func NewCart() *Cart { return &Cart{} }

// AddItem merges quantity into an existing (id, size) line or appends a new
// one. Quantity below 1 counts as 1; an empty color becomes DefaultColor.
func (c *Cart) AddItem(line domain.CartLine) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if line.Color == "" {
		line.Color = DefaultColor
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID && c.lines[i].Size == line.Size {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// UpdateQuantity sets the quantity of the (id, size) line. Zero or negative
// removes the line; flooring at 1 is the caller's concern. Absent lines are
// a no-op.
func (c *Cart) UpdateQuantity(productID int, size string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Size == size {
			if qty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = qty
			}
			return
		}
	}
}

// RemoveItem drops the (id, size) line; no-op if absent.
func (c *Cart) RemoveItem(productID int, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Size == size {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called on explicit clear and after a successful
// payment.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums parsed price times quantity across all lines, in whole rupees.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += catalog.ParsePrice(l.Price) * l.Quantity
	}
	return total
}

// ItemCount sums quantities across lines, not the line count.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Visibility of the cart sidebar. Independent of contents.

func (c *Cart) Open()   { c.mu.Lock(); c.open = true; c.mu.Unlock() }
func (c *Cart) Close()  { c.mu.Lock(); c.open = false; c.mu.Unlock() }
func (c *Cart) Toggle() { c.mu.Lock(); c.open = !c.open; c.mu.Unlock() }

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}
