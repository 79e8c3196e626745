// Package pagination slices an ordered list into fixed-size pages.
package pagination

// Pager walks a source list page by page. Pages are 1-indexed; requests
// outside [1, TotalPages] are ignored rather than erroring.
type Pager[T any] struct {
	items    []T
	pageSize int
	page     int
}

// New builds a pager positioned on page 1. pageSize below 1 is clamped to 1.
func New[T any](items []T, pageSize int) *Pager[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager[T]{items: items, pageSize: pageSize, page: 1}
}

// SetItems swaps the source list. If the list shrank past the current page,
// the pager resets to page 1.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.normalize()
}

// SetPageSize changes the page size (clamped to >= 1) and re-checks bounds.
func (p *Pager[T]) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	p.pageSize = n
	p.normalize()
}

func (p *Pager[T]) normalize() {
	if t := p.TotalPages(); p.page > t && t > 0 {
		p.page = 1
	}
}

func (p *Pager[T]) CurrentPage() int { return p.page }
func (p *Pager[T]) PageSize() int    { return p.pageSize }
func (p *Pager[T]) TotalItems() int  { return len(p.items) }

// TotalPages is ceil(len/pageSize); an empty list has zero pages.
func (p *Pager[T]) TotalPages() int {
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// GoToPage moves to page n when it is in range; out-of-range requests leave
// the pager unchanged.
func (p *Pager[T]) GoToPage(n int) {
	if n >= 1 && n <= p.TotalPages() {
		p.page = n
	}
}

func (p *Pager[T]) Next() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

func (p *Pager[T]) Previous() {
	if p.page > 1 {
		p.page--
	}
}

func (p *Pager[T]) HasNext() bool     { return p.page < p.TotalPages() }
func (p *Pager[T]) HasPrevious() bool { return p.page > 1 }

// Slice returns the items on the current page.
func (p *Pager[T]) Slice() []T {
	p.normalize()
	start := (p.page - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// StartIndex and EndIndex are the 1-indexed bounds of the current page for
// "showing X–Y of Z" messaging. Both are 0 for an empty list.
func (p *Pager[T]) StartIndex() int {
	if len(p.items) == 0 {
		return 0
	}
	p.normalize()
	return (p.page-1)*p.pageSize + 1
}

func (p *Pager[T]) EndIndex() int {
	if len(p.items) == 0 {
		return 0
	}
	p.normalize()
	end := p.page * p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return end
}
