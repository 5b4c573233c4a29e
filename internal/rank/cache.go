package rank

import (
	"sync"

	"scholarhunt-engine/internal/domain"
)

// Cache memoizes compatibility scores per opportunity id for one session.
// Scoring is pure, so recomputation is idempotent; the cache exists so
// repeated renders and re-sorts reuse the same value. The engine serves
// concurrent HTTP requests, hence the mutex.
type Cache struct {
	mu sync.Mutex
	m  map[string]int
}

func NewCache() *Cache {
	return &Cache{m: make(map[string]int)}
}

// Get returns the cached score, or FloorScore when the id was never scored.
func (c *Cache) Get(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.m[id]; ok {
		return s
	}
	return FloorScore
}

func (c *Cache) Put(id string, score int) {
	c.mu.Lock()
	c.m[id] = score
	c.mu.Unlock()
}

// Reset drops everything. Called when the opportunity set or the profile
// changes; cached values would otherwise go stale against the new inputs.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.m = make(map[string]int)
	c.mu.Unlock()
}

// Fill scores every opportunity that isn't cached yet. With a profile it
// uses the compatibility score, otherwise the stable list score.
func (c *Cache) Fill(opps []domain.Opportunity, profile *domain.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range opps {
		id := opps[i].ID
		if _, ok := c.m[id]; ok {
			continue
		}
		if profile != nil {
			c.m[id] = Score(&opps[i], profile)
		} else {
			c.m[id] = ListScore(&opps[i])
		}
	}
}
