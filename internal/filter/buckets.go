package filter

import (
	"fmt"
	"math"

	"shelterBack/internal/models"
)

// Default price range used for bucket generation when no listings exist.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 100000
)

const bucketCount = 5

// PriceBucket is one selectable price sub-range for the filter dropdown.
// nil bounds mean unbounded ("All Prices").
type PriceBucket struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
}

// ObservedRange returns the price range across the source listings. The range
// is seeded with zero, so a source of positive prices always starts at 0; an
// empty source falls back to the configured defaults.
func ObservedRange(src []models.Accommodation) (min, max float64) {
	if len(src) == 0 {
		return DefaultMinPrice, DefaultMaxPrice
	}
	min, max = 0, 0
	for _, acc := range src {
		if acc.Price < min {
			min = acc.Price
		}
		if acc.Price > max {
			max = acc.Price
		}
	}
	return min, max
}

// Buckets partitions [min, max] into five equal-width price buckets plus a
// leading "All Prices" option. The width is rounded up to the nearest
// thousand and the last bucket is clamped to the observed max, so the same
// (min, max) pair always yields identical buckets.
func Buckets(min, max float64) []PriceBucket {
	buckets := make([]PriceBucket, 0, bucketCount+1)
	buckets = append(buckets, PriceBucket{
		ID:    "all",
		Label: "All Prices",
	})

	step := math.Ceil((max-min)/bucketCount/1000) * 1000

	for i := 0; i < bucketCount; i++ {
		lo := min + float64(i)*step
		hi := min + float64(i+1)*step
		label := fmt.Sprintf("₹%.0f - ₹%.0f", lo, hi)
		if i == bucketCount-1 {
			hi = max
			label = fmt.Sprintf("Above ₹%.0f", lo)
		}

		buckets = append(buckets, PriceBucket{
			ID:    fmt.Sprintf("range%d", i+1),
			Label: label,
			Min:   &lo,
			Max:   &hi,
		})
	}

	return buckets
}
