package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Opportunity is one PhD listing. Empty strings mean "not provided";
// everything downstream (filtering, scoring, sorting) must tolerate that.
type Opportunity struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	University    string     `json:"university"`
	Department    string     `json:"department"`
	Description   string     `json:"description"`
	Subjects      StringList `json:"subjects"`
	Requirements  StringList `json:"requirements"`
	Deadline      string     `json:"deadline,omitempty"`   // ISO 8601 date, "" = unknown
	PostedDate    string     `json:"postedDate,omitempty"` // ISO 8601 date, "" = unknown
	FullyFunded   bool       `json:"fullyFunded"`
	International bool       `json:"international"`
	Supervisor    string     `json:"supervisor,omitempty"`
}

func (o Opportunity) HasDeadline() bool   { return strings.TrimSpace(o.Deadline) != "" }
func (o Opportunity) HasSupervisor() bool { return strings.TrimSpace(o.Supervisor) != "" }

// PostedTime resolves the date used for recency sorting: postedDate first,
// deadline as a fallback, zero time when neither parses.
func (o Opportunity) PostedTime() time.Time {
	if t, ok := ParseDate(o.PostedDate); ok {
		return t
	}
	if t, ok := ParseDate(o.Deadline); ok {
		return t
	}
	return time.Time{}
}

// ParseDate accepts the date shapes the UI has historically persisted:
// plain ISO dates and full RFC3339 timestamps. Anything else is "unknown".
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StringList tolerates both JSON shapes the stored data uses for subjects
// and requirements: a proper array, or one comma-delimited string.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = SplitList(one)
	return nil
}

// SplitList splits a comma-delimited field into trimmed, non-empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
