package keywords

// stopwords is the fixed exclusion list for keyword extraction: a mix of
// grammatical filler and terms that appear in essentially every listing.
// The list is part of the extract contract: changing it changes
// historical keyword output.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// grammatical filler
		"with", "this", "that", "these", "those", "from", "have",
		"will", "would", "should", "must", "were", "been", "being",
		"could", "your", "yours", "they", "their", "them", "ours",
		"whom", "whose", "which", "what", "when", "where", "while",
		"into", "onto", "upon", "within", "without", "about", "above",
		"also", "than", "then", "there", "here", "such", "some",
		"both", "each", "more", "most", "other", "others", "only",
		"same", "very", "well",
		// domain-generic terms present in nearly every listing
		"phd", "doctoral", "doctorate", "research", "researcher",
		"university", "universities", "scholarship", "scholarships",
		"studentship", "studentships", "position", "positions",
		"opportunity", "opportunities", "program", "programme",
		"programs", "programmes", "department", "faculty", "school",
		"student", "students", "candidate", "candidates", "applicant",
		"applicants", "application", "applications", "apply", "applying",
		"degree", "degrees", "study", "studies", "project", "projects",
		"work", "working", "funded", "funding", "fully", "stipend",
		"deadline", "required", "requirement", "requirements",
		"experience", "strong", "excellent", "good", "relevant",
		"include", "includes", "including", "successful", "interested",
		"field", "fields", "area", "areas", "topic", "topics",
		"supervisor", "supervision", "year", "years",
	} {
		stopwords[w] = struct{}{}
	}
}

func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
