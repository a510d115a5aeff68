package filter

import (
	"sort"
	"strings"

	"shelterBack/internal/models"
)

// Apply filters a snapshot of accommodations against the committed criteria
// and orders the result. Predicates are conjunctive and each one is a no-op
// while its criterion is unset. The source slice is never mutated; the caller
// is expected to have already restricted it to available listings.
func Apply(src []models.Accommodation, c Criteria, favorites map[string]struct{}) []models.Accommodation {
	filtered := make([]models.Accommodation, 0, len(src))
	for _, acc := range src {
		if matchesCriteria(acc, c, favorites) {
			filtered = append(filtered, acc)
		}
	}

	switch c.SortPrice {
	case SortAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	return filtered
}

func matchesCriteria(acc models.Accommodation, c Criteria, favorites map[string]struct{}) bool {
	if c.Search != "" && !containsFold(acc.Name, c.Search) {
		return false
	}
	if c.Location != "" && !containsFold(acc.Location, c.Location) {
		return false
	}
	if c.CompanyName != "" && !containsFold(acc.CompanyName, c.CompanyName) {
		return false
	}
	if c.OccupancyType != "" && acc.OccupancyType != c.OccupancyType {
		return false
	}
	if c.RoomType != "" && acc.RoomType != c.RoomType {
		return false
	}
	if c.MinPrice != nil && acc.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && acc.Price > *c.MaxPrice {
		return false
	}
	if c.Rating > 0 && acc.Rating < c.Rating {
		return false
	}
	if c.ShowFavorites {
		if _, ok := favorites[acc.ID]; !ok {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
