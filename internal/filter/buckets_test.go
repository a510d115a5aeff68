package filter

import (
	"testing"

	"shelterBack/internal/models"
)

func TestObservedRange(t *testing.T) {
	src := []models.Accommodation{
		{ID: "a", Price: 5000},
		{ID: "b", Price: 9000},
	}
	min, max := ObservedRange(src)
	// The range is seeded with zero, so positive-only prices start at 0.
	if min != 0 || max != 9000 {
		t.Fatalf("expected (0, 9000), got (%v, %v)", min, max)
	}

	min, max = ObservedRange(nil)
	if min != DefaultMinPrice || max != DefaultMaxPrice {
		t.Fatalf("empty source should fall back to defaults, got (%v, %v)", min, max)
	}
}

func TestBucketsBoundaries(t *testing.T) {
	got := Buckets(0, 9000)
	// width = ceil(9000/5/1000)*1000 = 2000
	want := []struct {
		min, max float64
	}{
		{0, 2000},
		{2000, 4000},
		{4000, 6000},
		{6000, 8000},
		{8000, 9000}, // last bucket clamped to the observed max
	}

	if len(got) != len(want)+1 {
		t.Fatalf("expected %d buckets, got %d", len(want)+1, len(got))
	}
	if got[0].Min != nil || got[0].Max != nil || got[0].Label != "All Prices" {
		t.Fatalf("first bucket must be the unbounded All Prices option: %+v", got[0])
	}

	for i, w := range want {
		b := got[i+1]
		if b.Min == nil || b.Max == nil {
			t.Fatalf("bucket %d has nil bounds", i+1)
		}
		if *b.Min != w.min || *b.Max != w.max {
			t.Fatalf("bucket %d: expected [%v, %v], got [%v, %v]", i+1, w.min, w.max, *b.Min, *b.Max)
		}
	}
}

func TestBucketsDefaultRange(t *testing.T) {
	got := Buckets(DefaultMinPrice, DefaultMaxPrice)
	// width = ceil(100000/5/1000)*1000 = 20000
	last := got[len(got)-1]
	if *last.Min != 80000 || *last.Max != 100000 {
		t.Fatalf("unexpected last bucket [%v, %v]", *last.Min, *last.Max)
	}
	if last.Label != "Above ₹80000" {
		t.Fatalf("unexpected last label %q", last.Label)
	}
}

func TestBucketsStableAcrossCalls(t *testing.T) {
	first := Buckets(0, 12345)
	second := Buckets(0, 12345)
	for i := range first {
		if first[i].Label != second[i].Label {
			t.Fatalf("bucket %d labels diverged: %q vs %q", i, first[i].Label, second[i].Label)
		}
		if (first[i].Min == nil) != (second[i].Min == nil) {
			t.Fatalf("bucket %d bounds diverged", i)
		}
		if first[i].Min != nil && (*first[i].Min != *second[i].Min || *first[i].Max != *second[i].Max) {
			t.Fatalf("bucket %d bounds diverged", i)
		}
	}
}
