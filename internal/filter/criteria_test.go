package filter

import (
	"testing"

	"shelterBack/internal/models"
)

func TestWithRatingToggles(t *testing.T) {
	c := Default().WithRating(3)
	if c.Rating != 3 {
		t.Fatalf("expected rating 3, got %v", c.Rating)
	}
	c = c.WithRating(3)
	if c.Rating != 0 {
		t.Fatalf("re-selecting the active rating should clear it, got %v", c.Rating)
	}
	c = c.WithRating(3).WithRating(5)
	if c.Rating != 5 {
		t.Fatalf("selecting a different rating should replace it, got %v", c.Rating)
	}
}

func TestWithSortToggles(t *testing.T) {
	c := Default().WithSort(SortDesc)
	if c.SortPrice != SortDesc {
		t.Fatalf("expected desc, got %q", c.SortPrice)
	}
	c = c.WithSort(SortDesc)
	if c.SortPrice != SortNone {
		t.Fatalf("re-selecting the active direction should clear it, got %q", c.SortPrice)
	}
	c = c.WithSort(SortDesc).WithSort(SortAsc)
	if c.SortPrice != SortAsc {
		t.Fatalf("expected asc, got %q", c.SortPrice)
	}
}

func TestDraftDoesNotAffectApplyUntilCommitted(t *testing.T) {
	src := sample()
	committed := Criteria{Location: "bangalore"}
	draft := Draft{Search: "sunrise", CompanyName: "colive"}

	before := ids(Apply(src, committed, nil))
	// Editing the draft alone must leave the committed result unchanged.
	after := ids(Apply(src, committed, nil))
	if !equalIDs(before, after) {
		t.Fatalf("draft edit leaked into apply: %v vs %v", before, after)
	}

	merged := CommitDraft(committed, draft)
	if merged.Location != "bangalore" {
		t.Fatalf("commit must not touch non-draft criteria, location = %q", merged.Location)
	}
	if merged.Search != "sunrise" || merged.CompanyName != "colive" {
		t.Fatalf("draft fields not merged: %+v", merged)
	}
	got := ids(Apply(src, merged, nil))
	if len(got) != 0 {
		t.Fatalf("merged criteria should match nothing in sample, got %v", got)
	}
}

func TestCommitDraftMergesPriceBounds(t *testing.T) {
	committed := Criteria{Rating: 4, MinPrice: fptr(1000), MaxPrice: fptr(2000)}
	draft := Draft{MinPrice: fptr(6000)}

	merged := CommitDraft(committed, draft)
	if merged.MinPrice == nil || *merged.MinPrice != 6000 {
		t.Fatalf("draft min price not committed: %+v", merged.MinPrice)
	}
	if merged.MaxPrice != nil {
		t.Fatalf("unset draft max price should clear the committed bound")
	}
	if merged.Rating != 4 {
		t.Fatalf("rating must survive commit, got %v", merged.Rating)
	}
}

func TestClearResetsEverything(t *testing.T) {
	c, d := Clear()
	if c != Default() {
		t.Fatalf("clear returned non-default criteria: %+v", c)
	}
	if d.Search != "" || d.CompanyName != "" || d.MinPrice != nil || d.MaxPrice != nil {
		t.Fatalf("clear returned non-empty draft: %+v", d)
	}

	src := []models.Accommodation{{ID: "a", Name: "Sunrise PG", Price: 5000}}
	if got := Apply(src, c, nil); len(got) != len(src) {
		t.Fatalf("cleared criteria should be the identity filter")
	}
}
