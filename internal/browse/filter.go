package browse

import (
	"strings"

	"scholarhunt-engine/internal/domain"
)

// Filter narrows opportunities by free-text query and flag predicates,
// preserving input order. An empty result is a normal outcome, not an
// error. The input slice is never mutated.
func Filter(opps []domain.Opportunity, query string, cfg domain.FilterConfig) []domain.Opportunity {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Opportunity, 0, len(opps))
	for _, o := range opps {
		if q != "" && !matchesQuery(o, q) {
			continue
		}
		if cfg.FullyFunded && !o.FullyFunded {
			continue
		}
		if cfg.International && !o.International {
			continue
		}
		if cfg.HasDeadline && !o.HasDeadline() {
			continue
		}
		if cfg.HasSupervisor && !o.HasSupervisor() {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesQuery(o domain.Opportunity, q string) bool {
	for _, field := range []string{o.Title, o.University, o.Department, o.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
