package query

import (
	"regexp"
	"strconv"
)

// Matches "5 years", "5+ years", "3.5 yrs", "7 yr".
var experiencePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`)

// extractMinExperience returns the minimum years of experience a query asks
// for, or nil when the query does not mention experience. The first mention
// wins. The input must already be lowercased.
func extractMinExperience(lower string) *float64 {
	m := experiencePattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &years
}
