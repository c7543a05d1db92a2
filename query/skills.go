package query

// extractSkills returns the vocabulary skills mentioned in the query, in
// vocabulary order. The vocabulary is already lowercased and sorted, so the
// result is deterministic for a given query and index.
func extractSkills(lower string, vocabulary []string) []string {
	var matched []string
	for _, skill := range vocabulary {
		if containsTerm(lower, skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}
