package query

// Phrases that signal the requester needs someone who can start.
var availabilityPhrases = []string{
	"available",
	"availability",
	"immediately",
	"right away",
	"asap",
	"now",
}

// mentionsAvailability reports whether the query asks for available people.
// The input must already be lowercased.
func mentionsAvailability(lower string) bool {
	for _, phrase := range availabilityPhrases {
		if containsTerm(lower, phrase) {
			return true
		}
	}
	return false
}
