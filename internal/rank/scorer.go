package rank

import (
	"strings"

	"scholarhunt-engine/internal/domain"
)

const (
	// DefaultScore is returned when either side of the match is missing.
	DefaultScore = 50

	// FloorScore is the low end of the profile-less list score and the
	// value sorting assumes for items that were never scored.
	FloorScore = 32

	listScoreMax = 92

	interestBonusStep = 5
	interestBonusCap  = 20

	// DefaultProfileID keeps scores reproducible for sessions that have
	// a profile record without an id.
	DefaultProfileID = "user123"
)

// Score computes the 0..100 compatibility between a profile and an
// opportunity. It is a pure function: a deterministic hash base plus a
// capped bonus for interest/subject overlap. Explicitly not a model.
func Score(opp *domain.Opportunity, profile *domain.Profile) int {
	if opp == nil || profile == nil {
		return DefaultScore
	}

	pid := profile.ID
	if pid == "" {
		pid = DefaultProfileID
	}
	base := BoundedHash(opp.ID+"-"+pid, 0, 100)

	bonus := 0
	for _, interest := range profile.Interests {
		in := strings.ToLower(strings.TrimSpace(interest))
		if in == "" {
			continue
		}
		for _, subject := range opp.Subjects {
			sub := strings.ToLower(strings.TrimSpace(subject))
			if sub == "" {
				continue
			}
			if strings.Contains(sub, in) || strings.Contains(in, sub) {
				bonus += interestBonusStep
			}
			if bonus >= interestBonusCap {
				break
			}
		}
		if bonus >= interestBonusCap {
			break
		}
	}
	if bonus > interestBonusCap {
		bonus = interestBonusCap
	}

	return clamp(base+bonus, 0, 100)
}

// ListScore is the bulk variant used when no profile (or statement of
// purpose) is available: a stable per-item value in [32, 92).
func ListScore(opp *domain.Opportunity) int {
	if opp == nil {
		return DefaultScore
	}
	return BoundedHash(opp.ID, FloorScore, listScoreMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
