package filter

// SortDirection orders a filtered result by price.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Criteria is the committed filter state. The zero value means "no filter":
// empty strings, nil price bounds, zero rating and SortNone are all inactive.
type Criteria struct {
	Search        string        `json:"search"`
	Location      string        `json:"location"`
	CompanyName   string        `json:"companyName"`
	MinPrice      *float64      `json:"minPrice"`
	MaxPrice      *float64      `json:"maxPrice"`
	Rating        float64       `json:"rating"`
	OccupancyType string        `json:"occupancyType"`
	RoomType      string        `json:"roomType"`
	ShowFavorites bool          `json:"showFavorites"`
	SortPrice     SortDirection `json:"sortPrice"`
}

// Draft holds the free-text inputs (and, for the raw number inputs, the price
// bounds) that the user edits without affecting results. They only reach the
// committed Criteria through CommitDraft.
type Draft struct {
	Search      string   `json:"search"`
	CompanyName string   `json:"companyName"`
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
}

// Default returns the all-unset criteria.
func Default() Criteria {
	return Criteria{}
}

// WithRating sets the minimum rating threshold. Selecting the already-active
// rating clears it back to 0, like re-clicking a star button.
func (c Criteria) WithRating(rating float64) Criteria {
	if c.Rating == rating {
		c.Rating = 0
	} else {
		c.Rating = rating
	}
	return c
}

// WithSort sets the price ordering. Selecting the already-active direction
// clears it back to SortNone, like re-clicking a radio button.
func (c Criteria) WithSort(dir SortDirection) Criteria {
	if c.SortPrice == dir {
		c.SortPrice = SortNone
	} else {
		c.SortPrice = dir
	}
	return c
}

// WithPriceRange commits bucket-driven price bounds immediately. nil bounds
// select "All Prices".
func (c Criteria) WithPriceRange(min, max *float64) Criteria {
	c.MinPrice = min
	c.MaxPrice = max
	return c
}

// CommitDraft merges the draft fields into the committed criteria, leaving
// every other criterion untouched.
func CommitDraft(c Criteria, d Draft) Criteria {
	c.Search = d.Search
	c.CompanyName = d.CompanyName
	c.MinPrice = d.MinPrice
	c.MaxPrice = d.MaxPrice
	return c
}

// Clear resets both the committed criteria and the draft inputs.
func Clear() (Criteria, Draft) {
	return Criteria{}, Draft{}
}
