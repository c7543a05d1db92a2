package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
)

// MockAdvisor is a test double for ai.Advisor.
// It allows custom behavior injection via function fields.
type MockAdvisor struct {
	// AdviseFunc is called by Advise if set.
	// If nil, renders a fixed template over the candidates.
	AdviseFunc func(ctx context.Context, query string, candidates []core.EmployeeProfile) (string, error)

	callCount int
}

var _ ai.Advisor = (*MockAdvisor)(nil)

// NewMockAdvisor creates a mock advisor with default template behavior.
// Note: Returns concrete type to allow test assertions via GetMockAdvisor().
func NewMockAdvisor() *MockAdvisor {
	return &MockAdvisor{}
}

// Advise renders a deterministic recommendation from the top candidates.
func (m *MockAdvisor) Advise(ctx context.Context, query string, candidates []core.EmployeeProfile) (string, error) {
	m.callCount++

	if m.AdviseFunc != nil {
		return m.AdviseFunc(ctx, query, candidates)
	}

	if len(candidates) == 0 {
		return "I couldn't find matching profiles for that request. Could you broaden the skills or experience range?", nil
	}

	lines := make([]string, 0, 3)
	for i, c := range candidates {
		if i >= 3 {
			break
		}
		skills := c.Skills
		if len(skills) > 4 {
			skills = skills[:4]
		}
		lines = append(lines, fmt.Sprintf("• %s — %s, %.0f yrs. Skills: %s. Availability: %s.",
			c.Name, c.Title, c.ExperienceYears, strings.Join(skills, ", "), c.Availability))
	}

	return "Here are strong matches I found based on your request:\n\n" +
		strings.Join(lines, "\n") +
		"\n\nWould you like me to confirm their availability for a kickoff or share more on their past projects?", nil
}

// CallCount returns the number of times Advise was called.
func (m *MockAdvisor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockAdvisor) Reset() {
	m.callCount = 0
	m.AdviseFunc = nil
}
