package pagination

// Result describes one page over a list of n items. Start and End are slice
// bounds into the list; the last page may be shorter than the page size.
type Result struct {
	Start      int `json:"-"`
	End        int `json:"-"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// TotalPages returns how many pages of the given size cover n items. A list
// of zero items still has one (empty) page.
func TotalPages(n, size int) int {
	total := (n + size - 1) / size
	if total < 1 {
		total = 1
	}
	return total
}

// Paginate computes the slice bounds for the requested page over n items.
// size must be positive. Out-of-range pages are clamped, never rejected.
func Paginate(n, page, size int) Result {
	total := TotalPages(n, size)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * size
	if start > n {
		start = n
	}
	end := start + size
	if end > n {
		end = n
	}

	return Result{Start: start, End: end, Page: page, TotalPages: total}
}

// Pager tracks the current page over a list that changes underneath it,
// typically the output of the filter engine.
type Pager struct {
	size  int
	page  int
	items int
}

// NewPager creates a pager with a fixed page size. size must be positive;
// a non-positive size is a programmer error.
func NewPager(size int) *Pager {
	if size < 1 {
		panic("pagination: page size must be positive")
	}
	return &Pager{size: size, page: 1}
}

// Update tells the pager the underlying list changed. Any change in length
// resets the current page to 1, so a user who narrows the filters while deep
// in the results never lands on an empty page.
func (p *Pager) Update(n int) {
	if n != p.items {
		p.items = n
		p.page = 1
		return
	}
	if p.page > p.TotalPages() {
		p.page = 1
	}
}

// GoTo moves to the requested page, silently clamped into range.
func (p *Pager) GoTo(page int) int {
	total := p.TotalPages()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	p.page = page
	return p.page
}

// Next moves forward one page, stopping at the last page.
func (p *Pager) Next() int {
	return p.GoTo(p.page + 1)
}

// Previous moves back one page, stopping at page 1.
func (p *Pager) Previous() int {
	return p.GoTo(p.page - 1)
}

func (p *Pager) Page() int {
	return p.page
}

func (p *Pager) TotalPages() int {
	return TotalPages(p.items, p.size)
}

// Bounds returns the slice bounds of the current page.
func (p *Pager) Bounds() (start, end int) {
	r := Paginate(p.items, p.page, p.size)
	return r.Start, r.End
}
