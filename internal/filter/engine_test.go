package filter

import (
	"testing"

	"shelterBack/internal/models"
)

func fptr(v float64) *float64 { return &v }

func sample() []models.Accommodation {
	return []models.Accommodation{
		{ID: "a", Name: "Sunrise PG", Location: "bangalore", CompanyName: "Stanza", Price: 5000, Rating: 4, OccupancyType: models.OccupancyBoys, RoomType: models.RoomPGHostel},
		{ID: "b", Name: "Blue Hostel", Location: "chennai", CompanyName: "Zolo", Price: 9000, Rating: 3, OccupancyType: models.OccupancyLadies, RoomType: models.RoomPGHostel},
		{ID: "c", Name: "Green Nest", Location: "bangalore", CompanyName: "Colive", Price: 7500, Rating: 4.5, OccupancyType: models.OccupancyColiving, RoomType: models.RoomFlatmates},
		{ID: "d", Name: "City Flat", Location: "pune", CompanyName: "Stanza", Price: 7500, Rating: 2, OccupancyType: models.OccupancyFamily, RoomType: models.RoomFullHouse},
	}
}

func ids(accs []models.Accommodation) []string {
	out := make([]string, 0, len(accs))
	for _, acc := range accs {
		out = append(out, acc.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyDefaultCriteriaIsIdentity(t *testing.T) {
	src := sample()
	got := Apply(src, Default(), nil)
	if !equalIDs(ids(got), ids(src)) {
		t.Fatalf("expected identity result, got %v", ids(got))
	}
}

func TestApplyPredicates(t *testing.T) {
	cases := []struct {
		name      string
		criteria  Criteria
		favorites map[string]struct{}
		want      []string
	}{
		{"search case folded", Criteria{Search: "sunrise"}, nil, []string{"a"}},
		{"search partial", Criteria{Search: "e"}, nil, []string{"a", "b", "c"}},
		{"location", Criteria{Location: "BANGALORE"}, nil, []string{"a", "c"}},
		{"company", Criteria{CompanyName: "stanza"}, nil, []string{"a", "d"}},
		{"occupancy exact", Criteria{OccupancyType: models.OccupancyLadies}, nil, []string{"b"}},
		{"room exact", Criteria{RoomType: models.RoomPGHostel}, nil, []string{"a", "b"}},
		{"min price inclusive", Criteria{MinPrice: fptr(7500)}, nil, []string{"b", "c", "d"}},
		{"max price inclusive", Criteria{MaxPrice: fptr(7500)}, nil, []string{"a", "c", "d"}},
		{"rating threshold", Criteria{Rating: 4}, nil, []string{"a", "c"}},
		{"favorites only", Criteria{ShowFavorites: true}, map[string]struct{}{"b": {}, "d": {}}, []string{"b", "d"}},
		{"favorites with empty set", Criteria{ShowFavorites: true}, nil, []string{}},
		{"min above max empty", Criteria{MinPrice: fptr(8000), MaxPrice: fptr(6000)}, nil, []string{}},
		{"conjunction", Criteria{Location: "bangalore", Rating: 4, MaxPrice: fptr(6000)}, nil, []string{"a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(sample(), tc.criteria, tc.favorites))
			if !equalIDs(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestApplyNarrowsConjunctively(t *testing.T) {
	src := sample()
	broad := Criteria{Location: "bangalore"}
	narrow := broad
	narrow.Rating = 4
	narrow.RoomType = models.RoomFlatmates

	broadIDs := ids(Apply(src, broad, nil))
	narrowIDs := ids(Apply(src, narrow, nil))

	for _, id := range narrowIDs {
		found := false
		for _, b := range broadIDs {
			if b == id {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("narrower criteria produced %q not present in broader result %v", id, broadIDs)
		}
	}
}

func TestApplySortAscending(t *testing.T) {
	got := Apply(sample(), Criteria{SortPrice: SortAsc}, nil)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("result not ascending at %d: %v", i, ids(got))
		}
	}
	// c and d share a price; stable sort keeps source order.
	if !equalIDs(ids(got), []string{"a", "c", "d", "b"}) {
		t.Fatalf("unexpected order %v", ids(got))
	}
}

func TestApplySortDescendingKeepsTieOrder(t *testing.T) {
	got := Apply(sample(), Criteria{SortPrice: SortDesc}, nil)
	if !equalIDs(ids(got), []string{"b", "c", "d", "a"}) {
		t.Fatalf("unexpected order %v", ids(got))
	}
}

func TestApplyNoSortPreservesSourceOrder(t *testing.T) {
	got := Apply(sample(), Criteria{MinPrice: fptr(7000)}, nil)
	if !equalIDs(ids(got), []string{"b", "c", "d"}) {
		t.Fatalf("filtered subsequence order broken: %v", ids(got))
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := sample()
	Apply(src, Criteria{SortPrice: SortDesc}, nil)
	if !equalIDs(ids(src), []string{"a", "b", "c", "d"}) {
		t.Fatalf("source mutated: %v", ids(src))
	}
}

func TestApplyMissingTextFields(t *testing.T) {
	src := []models.Accommodation{{ID: "x", Price: 4000}}
	if got := Apply(src, Criteria{Search: "any"}, nil); len(got) != 0 {
		t.Fatalf("empty name matched non-empty search: %v", ids(got))
	}
	if got := Apply(src, Criteria{Search: ""}, nil); len(got) != 1 {
		t.Fatalf("empty search should match everything")
	}
}

func TestApplyExampleScenarios(t *testing.T) {
	src := []models.Accommodation{
		{ID: "a", Name: "Sunrise PG", Price: 5000, Rating: 4},
		{ID: "b", Name: "Blue Hostel", Price: 9000, Rating: 3},
	}

	got := Apply(src, Criteria{MinPrice: fptr(6000)}, nil)
	if !equalIDs(ids(got), []string{"b"}) {
		t.Fatalf("min price scenario: expected [b] got %v", ids(got))
	}

	got = Apply(src, Criteria{SortPrice: SortDesc}, nil)
	if !equalIDs(ids(got), []string{"b", "a"}) {
		t.Fatalf("sort scenario: expected [b a] got %v", ids(got))
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	c := Criteria{Location: "bangalore", SortPrice: SortAsc}
	first := ids(Apply(sample(), c, nil))
	second := ids(Apply(sample(), c, nil))
	if !equalIDs(first, second) {
		t.Fatalf("repeated apply diverged: %v vs %v", first, second)
	}
}
