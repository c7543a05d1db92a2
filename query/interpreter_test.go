package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVocabulary = []string{"go", "kubernetes", "machine learning", "python", "sql"}

func newTestInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	interp, err := NewInterpreter()
	require.NoError(t, err)
	return interp
}

func TestInterpret_Experience(t *testing.T) {
	interp := newTestInterpreter(t)

	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{"plain years", "someone with 5 years of backend work", 5},
		{"plus suffix", "need 7+ years leading teams", 7},
		{"at least phrasing", "at least 3 years with data pipelines", 3},
		{"fractional", "2.5 years in support roles", 2.5},
		{"yrs abbreviation", "10 yrs doing infrastructure", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := interp.Interpret(tt.query, testVocabulary)
			require.NotNil(t, intent.MinExperience)
			assert.Equal(t, tt.want, *intent.MinExperience)
		})
	}
}

func TestInterpret_NoExperienceMention(t *testing.T) {
	interp := newTestInterpreter(t)

	intent := interp.Interpret("a senior backend engineer", testVocabulary)
	assert.Nil(t, intent.MinExperience)
}

func TestInterpret_Skills(t *testing.T) {
	interp := newTestInterpreter(t)

	intent := interp.Interpret("Python engineer who knows SQL and Kubernetes", testVocabulary)
	assert.Equal(t, []string{"kubernetes", "python", "sql"}, intent.RequiredSkills)
}

func TestInterpret_SkillsWholeWordOnly(t *testing.T) {
	interp := newTestInterpreter(t)

	// "golang" must not match the vocabulary skill "go".
	intent := interp.Interpret("a golang enthusiast", testVocabulary)
	assert.Empty(t, intent.RequiredSkills)

	intent = interp.Interpret("writes go, loves testing", testVocabulary)
	assert.Equal(t, []string{"go"}, intent.RequiredSkills)
}

func TestInterpret_MultiWordSkill(t *testing.T) {
	interp := newTestInterpreter(t)

	intent := interp.Interpret("machine learning specialist", testVocabulary)
	assert.Equal(t, []string{"machine learning"}, intent.RequiredSkills)
}

func TestInterpret_Availability(t *testing.T) {
	interp := newTestInterpreter(t)

	tests := []struct {
		query string
		want  bool
	}{
		{"someone available for a new project", true},
		{"who can start right away", true},
		{"who is free now", true},
		{"need a dev ASAP", true},
		{"checking availability for Q4", true},
		{"a senior engineer for the platform team", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			intent := interp.Interpret(tt.query, testVocabulary)
			assert.Equal(t, tt.want, intent.RequireAvailable)
		})
	}
}

func TestInterpret_NoSignals(t *testing.T) {
	interp := newTestInterpreter(t)

	raw := "  a thoughtful generalist for the growth team  "
	intent := interp.Interpret(raw, testVocabulary)

	assert.Equal(t, raw, intent.RawQuery)
	assert.Equal(t, "a thoughtful generalist for the growth team", intent.SemanticText)
	assert.Empty(t, intent.RequiredSkills)
	assert.Nil(t, intent.MinExperience)
	assert.False(t, intent.RequireAvailable)
}

func TestInterpret_EmptyVocabulary(t *testing.T) {
	interp := newTestInterpreter(t)

	intent := interp.Interpret("python engineer", nil)
	assert.Empty(t, intent.RequiredSkills)
}
