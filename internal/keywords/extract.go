package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"scholarhunt-engine/internal/domain"
)

// MaxKeywords bounds the extract result.
const MaxKeywords = 3

const minTokenLen = 4

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Extract derives up to MaxKeywords salient keywords from an opportunity's
// free-text fields, ordered by descending frequency with ties broken by
// first appearance. An opportunity with no text yields an empty slice.
func Extract(opp *domain.Opportunity) []string {
	if opp == nil {
		return nil
	}

	var parts []string
	for _, p := range []string{
		opp.Title,
		opp.Description,
		opp.Department,
		strings.Join(opp.Subjects, " "),
		strings.Join(opp.Requirements, " "),
	} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}

	text := strings.ToLower(strings.Join(parts, " "))

	counts := make(map[string]int)
	var order []string // tokens in first-appearance order

	for _, token := range strings.Fields(text) {
		token = nonWord.ReplaceAllString(token, "")
		if utf8.RuneCountInString(token) < minTokenLen || isStopword(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	// order is already first-appearance sorted; a stable sort by count
	// keeps that as the tie-break.
	top := make([]string, len(order))
	copy(top, order)
	sort.SliceStable(top, func(i, j int) bool {
		return counts[top[i]] > counts[top[j]]
	})

	if len(top) > MaxKeywords {
		top = top[:MaxKeywords]
	}
	return top
}
