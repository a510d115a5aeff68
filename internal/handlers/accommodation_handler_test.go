package handlers

import (
	"net/http/httptest"
	"testing"

	"shelterBack/internal/filter"
)

func TestParseListingCriteria(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want filter.Criteria
	}{
		{
			name: "no parameters",
			url:  "/accommodations/get",
			want: filter.Criteria{},
		},
		{
			name: "text filters",
			url:  "/accommodations/get?search=pg&location=bangalore&company=stanza",
			want: filter.Criteria{Search: "pg", Location: "bangalore", CompanyName: "stanza"},
		},
		{
			name: "category filters",
			url:  "/accommodations/get?occupancy_type=boys&room_type=PG%2FHostel",
			want: filter.Criteria{OccupancyType: "boys", RoomType: "PG/Hostel"},
		},
		{
			name: "price bounds",
			url:  "/accommodations/get?min_price=2000&max_price=8000",
			want: filter.Criteria{MinPrice: fptr(2000), MaxPrice: fptr(8000)},
		},
		{
			name: "unparseable price is ignored",
			url:  "/accommodations/get?min_price=cheap",
			want: filter.Criteria{},
		},
		{
			name: "rating and sort",
			url:  "/accommodations/get?rating=4&sort=desc",
			want: filter.Criteria{Rating: 4, SortPrice: filter.SortDesc},
		},
		{
			name: "unknown sort stays unset",
			url:  "/accommodations/get?sort=price",
			want: filter.Criteria{},
		},
		{
			name: "favorites flag",
			url:  "/accommodations/get?favorites=true",
			want: filter.Criteria{ShowFavorites: true},
		},
		{
			name: "favorites flag must be exactly true",
			url:  "/accommodations/get?favorites=1",
			want: filter.Criteria{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got := parseListingCriteria(r)

			if got.Search != tt.want.Search || got.Location != tt.want.Location || got.CompanyName != tt.want.CompanyName {
				t.Errorf("text fields = %q/%q/%q, want %q/%q/%q",
					got.Search, got.Location, got.CompanyName,
					tt.want.Search, tt.want.Location, tt.want.CompanyName)
			}
			if got.OccupancyType != tt.want.OccupancyType || got.RoomType != tt.want.RoomType {
				t.Errorf("category fields = %q/%q, want %q/%q",
					got.OccupancyType, got.RoomType, tt.want.OccupancyType, tt.want.RoomType)
			}
			if !floatPtrEqual(got.MinPrice, tt.want.MinPrice) || !floatPtrEqual(got.MaxPrice, tt.want.MaxPrice) {
				t.Errorf("price bounds = %v/%v, want %v/%v",
					fval(got.MinPrice), fval(got.MaxPrice), fval(tt.want.MinPrice), fval(tt.want.MaxPrice))
			}
			if got.Rating != tt.want.Rating {
				t.Errorf("rating = %v, want %v", got.Rating, tt.want.Rating)
			}
			if got.ShowFavorites != tt.want.ShowFavorites {
				t.Errorf("show favorites = %v, want %v", got.ShowFavorites, tt.want.ShowFavorites)
			}
			if got.SortPrice != tt.want.SortPrice {
				t.Errorf("sort = %q, want %q", got.SortPrice, tt.want.SortPrice)
			}
		})
	}
}

func TestGetParamColonAndPlainForms(t *testing.T) {
	r := httptest.NewRequest("GET", "/accommodations/room/abc?:id=abc", nil)
	if got := getParam(r, "id"); got != "abc" {
		t.Errorf("colon form = %q, want %q", got, "abc")
	}

	r = httptest.NewRequest("GET", "/accommodations/get?user_id=u1", nil)
	if got := getParam(r, "user_id"); got != "u1" {
		t.Errorf("plain form = %q, want %q", got, "u1")
	}

	r = httptest.NewRequest("GET", "/accommodations/get", nil)
	if got := getParam(r, "id"); got != "" {
		t.Errorf("missing param = %q, want empty", got)
	}
}

func fptr(f float64) *float64 { return &f }

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fval(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
