package browse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scholarhunt-engine/internal/browse"
	"scholarhunt-engine/internal/domain"
	"scholarhunt-engine/internal/rank"
)

func TestSort_DateDescending(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "old", PostedDate: "2024-11-01"},
		{ID: "new", PostedDate: "2025-02-01"},
		{ID: "mid", PostedDate: "2025-01-01"},
	}
	got := browse.Sort(opps, browse.SortByDate, nil)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got))
}

func TestSort_DateStableForEqualKeys(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "first", PostedDate: "2025-01-01"},
		{ID: "second", PostedDate: "2025-01-01"},
		{ID: "third", PostedDate: "2025-01-01"},
	}
	got := browse.Sort(opps, browse.SortByDate, nil)
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestSort_UndatedLast(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "undated"},
		{ID: "dated", PostedDate: "2025-01-01"},
		{ID: "garbage", PostedDate: "not a date"},
	}
	got := browse.Sort(opps, browse.SortByDate, nil)
	assert.Equal(t, "dated", got[0].ID)
	// undated and malformed both sort as unknown, keeping input order
	assert.Equal(t, []string{"undated", "garbage"}, ids(got[1:]))
}

func TestSort_DeadlineFallback(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "deadline-only", Deadline: "2025-08-01"},
		{ID: "posted", PostedDate: "2025-01-01"},
	}
	got := browse.Sort(opps, browse.SortByDate, nil)
	assert.Equal(t, []string{"deadline-only", "posted"}, ids(got))
}

func TestSort_CompatibilityUsesCache(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "low"},
		{ID: "high"},
		{ID: "unscored"},
	}
	cache := rank.NewCache()
	cache.Put("low", 40)
	cache.Put("high", 90)
	// "unscored" falls back to the floor default 32

	got := browse.Sort(opps, browse.SortByCompatibility, cache)
	assert.Equal(t, []string{"high", "low", "unscored"}, ids(got))
}

func TestSort_CompatibilityNilCache(t *testing.T) {
	opps := []domain.Opportunity{{ID: "a"}, {ID: "b"}}
	got := browse.Sort(opps, browse.SortByCompatibility, nil)
	// everything ties at the floor default; order preserved
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestSort_UnknownKeyFallsBackToDate(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "old", PostedDate: "2024-01-01"},
		{ID: "new", PostedDate: "2025-01-01"},
	}
	got := browse.Sort(opps, "bogus", nil)
	assert.Equal(t, []string{"new", "old"}, ids(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "b", PostedDate: "2024-01-01"},
		{ID: "a", PostedDate: "2025-01-01"},
	}
	_ = browse.Sort(opps, browse.SortByDate, nil)
	assert.Equal(t, []string{"b", "a"}, ids(opps))
}

// the end-to-end shape the UI drives: filter then sort
func TestFilterThenSort(t *testing.T) {
	opps := []domain.Opportunity{
		{ID: "a", PostedDate: "2025-01-01", FullyFunded: true},
		{ID: "b", PostedDate: "2025-02-01", FullyFunded: false},
	}
	got := browse.Sort(
		browse.Filter(opps, "", domain.FilterConfig{FullyFunded: true}),
		browse.SortByDate,
		rank.NewCache(),
	)
	assert.Equal(t, []string{"a"}, ids(got))
}
