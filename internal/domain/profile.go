package domain

// Profile is the researcher profile the UI persists under "userProfile".
// The scoring pipeline treats it as read-only input.
type Profile struct {
	ID        string     `json:"id"`
	Interests StringList `json:"interests"`
	SOP       string     `json:"sop,omitempty"` // statement of purpose
}

// FilterConfig narrows an opportunity collection. Each true flag is an
// AND-combined predicate. Subjects is accepted but currently inert: the
// stored UIs have always sent it and never acted on it, so it stays a
// reserved field rather than a new behavior.
type FilterConfig struct {
	FullyFunded   bool     `json:"fullyFunded"`
	International bool     `json:"international"`
	HasDeadline   bool     `json:"hasDeadline"`
	HasSupervisor bool     `json:"hasSupervisor"`
	Subjects      []string `json:"subjects,omitempty"`
}
