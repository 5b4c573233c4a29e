package browse

import (
	"sort"

	"scholarhunt-engine/internal/domain"
	"scholarhunt-engine/internal/rank"
)

// Sort keys accepted by the browse pipeline. Anything else falls back to
// SortByDate.
const (
	SortByDate          = "date"
	SortByCompatibility = "compatibility"
)

// Sort returns a new slice ordered by the given key; the input is not
// mutated. Both orderings are stable: equal keys keep input order.
func Sort(opps []domain.Opportunity, key string, cache *rank.Cache) []domain.Opportunity {
	out := make([]domain.Opportunity, len(opps))
	copy(out, opps)

	switch key {
	case SortByCompatibility:
		if cache == nil {
			cache = rank.NewCache()
		}
		sort.SliceStable(out, func(i, j int) bool {
			return cache.Get(out[i].ID) > cache.Get(out[j].ID)
		})
	default:
		// newest first; items with no usable date carry the zero time
		// and end up last
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PostedTime().After(out[j].PostedTime())
		})
	}
	return out
}
