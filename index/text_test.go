package index

import (
	"testing"

	"github.com/poiesic/staffmatch/core"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalText_AllFields(t *testing.T) {
	profile := &core.EmployeeProfile{
		Id:               "p1",
		Name:             "Dana Kim",
		Title:            "Backend Engineer",
		Skills:           []string{"Go", "PostgreSQL"},
		ExperienceYears:  6.5,
		Projects:         []string{"billing", "ledger"},
		DomainExperience: []string{"fintech"},
		Location:         "Berlin",
		Availability:     core.AvailabilityAvailable,
		Bio:              "Likes distributed systems.",
	}

	got := CanonicalText(profile)
	want := "Dana Kim | Backend Engineer | experience 6.5 years | Go, PostgreSQL | billing, ledger | fintech | Berlin | available | Likes distributed systems."
	assert.Equal(t, want, got)
}

func TestCanonicalText_SkipsEmptyFields(t *testing.T) {
	profile := &core.EmployeeProfile{
		Id:              "p2",
		Name:            "Ravi Patel",
		Skills:          []string{"Python"},
		ExperienceYears: 3,
		Availability:    core.AvailabilityBusy,
	}

	got := CanonicalText(profile)
	want := "Ravi Patel | experience 3 years | Python | busy"
	assert.Equal(t, want, got)
}

func TestCanonicalText_Deterministic(t *testing.T) {
	profile := &core.EmployeeProfile{
		Id:              "p3",
		Name:            "Mina Okafor",
		Title:           "Data Scientist",
		Skills:          []string{"ML", "SQL"},
		ExperienceYears: 4,
		Availability:    core.AvailabilityAvailable,
	}

	first := CanonicalText(profile)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CanonicalText(profile), "canonical text must be stable")
	}
}

func TestCanonicalText_WholeYearsHaveNoDecimalPoint(t *testing.T) {
	profile := &core.EmployeeProfile{
		Id:              "p4",
		Name:            "A",
		ExperienceYears: 10,
		Skills:          []string{"Go"},
		Availability:    core.AvailabilityAvailable,
	}

	assert.Contains(t, CanonicalText(profile), "experience 10 years")
	assert.NotContains(t, CanonicalText(profile), "10.0")
}
