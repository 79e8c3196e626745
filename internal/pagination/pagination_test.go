package pagination_test

import (
	"testing"

	"monabazaar/internal/pagination"
)

func nums(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPagesCeiling(t *testing.T) {
	cases := []struct{ n, size, want int }{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{13, 4, 4},
	}
	for _, c := range cases {
		p := pagination.New(nums(c.n), c.size)
		if got := p.TotalPages(); got != c.want {
			t.Fatalf("n=%d size=%d: TotalPages=%d want %d", c.n, c.size, got, c.want)
		}
	}
}

func TestSliceLengths(t *testing.T) {
	p := pagination.New(nums(13), 4)
	for page := 1; page <= p.TotalPages(); page++ {
		p.GoToPage(page)
		got := len(p.Slice())
		want := 4
		if page == p.TotalPages() {
			want = 13 - (p.TotalPages()-1)*4
		}
		if got != want {
			t.Fatalf("page %d: len=%d want %d", page, got, want)
		}
	}
}

func TestGoToPageClampsSilently(t *testing.T) {
	p := pagination.New(nums(10), 4)
	p.GoToPage(2)
	p.GoToPage(0)
	if p.CurrentPage() != 2 {
		t.Fatalf("page changed on out-of-range request: %d", p.CurrentPage())
	}
	p.GoToPage(99)
	if p.CurrentPage() != 2 {
		t.Fatalf("page changed on out-of-range request: %d", p.CurrentPage())
	}
}

func TestNextPreviousBoundaries(t *testing.T) {
	p := pagination.New(nums(5), 4)
	p.Previous()
	if p.CurrentPage() != 1 {
		t.Fatal("Previous moved past page 1")
	}
	if !p.HasNext() || p.HasPrevious() {
		t.Fatal("wrong availability on first page")
	}
	p.Next()
	if p.CurrentPage() != 2 {
		t.Fatal("Next did not advance")
	}
	p.Next()
	if p.CurrentPage() != 2 {
		t.Fatal("Next moved past last page")
	}
	if p.HasNext() || !p.HasPrevious() {
		t.Fatal("wrong availability on last page")
	}
}

func TestShrinkResetsToPageOne(t *testing.T) {
	p := pagination.New(nums(20), 4)
	p.GoToPage(5)
	p.SetItems(nums(6))
	if p.CurrentPage() != 1 {
		t.Fatalf("expected reset to 1, got %d", p.CurrentPage())
	}
	got := p.Slice()
	if len(got) != 4 || got[0] != 1 {
		t.Fatalf("slice after reset: %v", got)
	}
}

func TestDisplayRange(t *testing.T) {
	p := pagination.New(nums(13), 4)
	p.GoToPage(4)
	if p.StartIndex() != 13 || p.EndIndex() != 13 {
		t.Fatalf("range = %d–%d", p.StartIndex(), p.EndIndex())
	}
	empty := pagination.New(nums(0), 4)
	if empty.StartIndex() != 0 || empty.EndIndex() != 0 || empty.TotalPages() != 0 {
		t.Fatal("empty list should report zero range and pages")
	}
}
