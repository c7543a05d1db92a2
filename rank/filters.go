package rank

import (
	"github.com/poiesic/staffmatch/core"
)

// passesFilters applies the intent's hard filters to one profile.
func passesFilters(profile *core.EmployeeProfile, intent *core.QueryIntent) bool {
	for _, skill := range intent.RequiredSkills {
		if !profile.HasSkill(skill) {
			return false
		}
	}
	if intent.MinExperience != nil && profile.ExperienceYears < *intent.MinExperience {
		return false
	}
	if intent.RequireAvailable && profile.Availability != core.AvailabilityAvailable {
		return false
	}
	return true
}

// matchedSkills returns the required skills the profile has, in intent order.
func matchedSkills(profile *core.EmployeeProfile, intent *core.QueryIntent) []string {
	var matched []string
	for _, skill := range intent.RequiredSkills {
		if profile.HasSkill(skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}
