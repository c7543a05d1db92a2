package respond

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/staffmatch/ai/mock"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSnapshot(t *testing.T) *index.Snapshot {
	t.Helper()

	profiles := []core.EmployeeProfile{
		{
			Id:              "emp-1",
			Name:            "Alice Chen",
			Title:           "Backend Engineer",
			Skills:          []string{"Go", "Kubernetes"},
			ExperienceYears: 7.5,
			Availability:    core.AvailabilityAvailable,
		},
		{
			Id:              "emp-2",
			Name:            "Bob Singh",
			Skills:          []string{"Python"},
			ExperienceYears: 3,
			Availability:    core.AvailabilityBusy,
		},
	}

	builder, err := index.NewBuilder(mock.NewMockEmbedder(), index.WithPoolSize(1), index.WithRetry(1, time.Millisecond))
	require.NoError(t, err)
	defer builder.Release()

	snapshot, err := builder.Build(context.Background(), profiles)
	require.NoError(t, err)
	return snapshot
}

func TestBuild(t *testing.T) {
	snapshot := buildTestSnapshot(t)

	min := 5.0
	intent := core.QueryIntent{
		RawQuery:         "go engineer with 5+ years, available",
		MinExperience:    &min,
		RequiredSkills:   []string{"go"},
		RequireAvailable: true,
	}
	results := []core.RankedResult{
		{
			ProfileID:         "emp-1",
			Rank:              1,
			Score:             0.87654321,
			Similarity:        0.87654321,
			MatchedSkills:     []string{"go"},
			MeetsExperience:   true,
			MeetsAvailability: true,
		},
	}

	resp, err := Build(intent, results, snapshot)
	require.NoError(t, err)

	assert.Equal(t, intent.RawQuery, resp.Query)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Candidates, 1)

	c := resp.Candidates[0]
	assert.Equal(t, "emp-1", c.Id)
	assert.Equal(t, 1, c.Rank)
	assert.Equal(t, "Alice Chen", c.Name)
	assert.Equal(t, "Backend Engineer", c.Title)
	assert.Equal(t, 7.5, c.ExperienceYears)
	assert.Equal(t, "available", c.Availability)
	assert.Equal(t, 0.8765, c.Score, "score rounds to 4 decimals")
	assert.Equal(t, []string{"skill:go", "experience>=5", "available"}, c.MatchedCriteria)
}

func TestBuild_Empty(t *testing.T) {
	snapshot := buildTestSnapshot(t)

	resp, err := Build(core.QueryIntent{RawQuery: "rust wizard"}, nil, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Candidates)
}

func TestBuild_UnknownProfile(t *testing.T) {
	snapshot := buildTestSnapshot(t)

	results := []core.RankedResult{{ProfileID: "emp-missing", Rank: 1}}
	_, err := Build(core.QueryIntent{}, results, snapshot)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestBuild_NoCriteriaWhenIntentHasNone(t *testing.T) {
	snapshot := buildTestSnapshot(t)

	results := []core.RankedResult{
		{ProfileID: "emp-2", Rank: 1, Score: 0.5, MeetsExperience: true, MeetsAvailability: false},
	}
	resp, err := Build(core.QueryIntent{RawQuery: "someone"}, results, snapshot)
	require.NoError(t, err)
	assert.Empty(t, resp.Candidates[0].MatchedCriteria)
}

func TestRenderText(t *testing.T) {
	resp := &Response{
		Query: "go engineer",
		Total: 1,
		Candidates: []Candidate{
			{
				Id:              "emp-1",
				Rank:            1,
				Name:            "Alice Chen",
				Title:           "Backend Engineer",
				Skills:          []string{"Go", "Kubernetes"},
				ExperienceYears: 7.5,
				Availability:    "available",
				Score:           0.8765,
				MatchedCriteria: []string{"skill:go"},
			},
		},
	}

	text := resp.RenderText()
	assert.Contains(t, text, "Found 1 matching employee(s)")
	assert.Contains(t, text, "1. Alice Chen, Backend Engineer (score 0.8765)")
	assert.Contains(t, text, "7.5 yrs, available. Skills: Go, Kubernetes")
	assert.Contains(t, text, "Matched: skill:go")
}

func TestRenderText_Empty(t *testing.T) {
	resp := &Response{Query: "anyone"}
	assert.Equal(t, "No matching employees found.\n", resp.RenderText())
}
