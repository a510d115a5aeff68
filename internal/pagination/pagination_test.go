package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name string
		n    int
		size int
		want int
	}{
		{"empty list still one page", 0, 9, 1},
		{"exact fit", 18, 9, 2},
		{"remainder adds page", 20, 9, 3},
		{"single short page", 5, 9, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalPages(tc.n, tc.size); got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestPaginateCoversListExactly(t *testing.T) {
	const n, size = 20, 9

	total := TotalPages(n, size)
	covered := 0
	for page := 1; page <= total; page++ {
		r := Paginate(n, page, size)
		if r.Start != covered {
			t.Fatalf("page %d starts at %d, expected %d", page, r.Start, covered)
		}
		length := r.End - r.Start
		if page < total && length != size {
			t.Fatalf("only the last page may be short; page %d has %d items", page, length)
		}
		covered = r.End
	}
	if covered != n {
		t.Fatalf("pages covered %d of %d items", covered, n)
	}
}

func TestPaginateClamps(t *testing.T) {
	r := Paginate(20, 0, 9)
	if r.Page != 1 {
		t.Fatalf("page 0 should clamp to 1, got %d", r.Page)
	}
	r = Paginate(20, 99, 9)
	if r.Page != 3 {
		t.Fatalf("page 99 should clamp to the last page, got %d", r.Page)
	}
	if r.Start != 18 || r.End != 20 {
		t.Fatalf("unexpected bounds [%d, %d) for last page", r.Start, r.End)
	}
}

func TestPagerResetsWhenListShrinks(t *testing.T) {
	p := NewPager(9)
	p.Update(20)
	if got := p.GoTo(3); got != 3 {
		t.Fatalf("expected page 3, got %d", got)
	}

	// Filters cut the list to 5 items: one page, pager must be back at 1.
	p.Update(5)
	if p.TotalPages() != 1 {
		t.Fatalf("expected 1 total page, got %d", p.TotalPages())
	}
	if p.Page() != 1 {
		t.Fatalf("pager must reset to page 1 after shrink, got %d", p.Page())
	}
}

func TestPagerResetsOnAnyListChange(t *testing.T) {
	p := NewPager(9)
	p.Update(20)
	p.GoTo(2)

	// Growing the list is still a list change under the conservative policy.
	p.Update(40)
	if p.Page() != 1 {
		t.Fatalf("pager should reset on any length change, got page %d", p.Page())
	}
}

func TestPagerNavigationClampsAtBoundaries(t *testing.T) {
	p := NewPager(9)
	p.Update(20)

	if got := p.Previous(); got != 1 {
		t.Fatalf("previous from first page should stay at 1, got %d", got)
	}
	p.GoTo(3)
	if got := p.Next(); got != 3 {
		t.Fatalf("next from last page should stay at 3, got %d", got)
	}
	if got := p.Previous(); got != 2 {
		t.Fatalf("expected page 2, got %d", got)
	}
}

func TestPagerBounds(t *testing.T) {
	p := NewPager(9)
	p.Update(20)
	p.GoTo(3)

	start, end := p.Bounds()
	if start != 18 || end != 20 {
		t.Fatalf("unexpected bounds [%d, %d)", start, end)
	}
}

func TestNewPagerRejectsNonPositiveSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for page size 0")
		}
	}()
	NewPager(0)
}
