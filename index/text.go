package index

import (
	"strconv"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// CanonicalText builds the textual representation of a profile that is fed
// to the embedder. The composition rule is fixed: non-empty fields joined
// with " | " in the order name, title, experience, skills, projects, domain
// experience, location, availability, bio. It must remain stable across
// reindex operations; changing it invalidates every cached vector and
// shifts relative rankings.
func CanonicalText(profile *core.EmployeeProfile) string {
	parts := []string{
		profile.Name,
		profile.Title,
		"experience " + strconv.FormatFloat(profile.ExperienceYears, 'f', -1, 64) + " years",
		strings.Join(profile.Skills, ", "),
		strings.Join(profile.Projects, ", "),
		strings.Join(profile.DomainExperience, ", "),
		profile.Location,
		profile.Availability.String(),
		profile.Bio,
	}

	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}
