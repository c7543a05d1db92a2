package openai

import (
	"encoding/json"
	"fmt"

	"github.com/poiesic/staffmatch/core"
)

const advisorSystemPrompt = `You are a helpful, warm HR talent advisor. Answer succinctly but human, conversational, and encouraging.
- Input: the user's staffing query and up to 5 candidate employee profiles (JSON), already ranked best-first.
- Task: Recommend the best 2-3 matches with rationale: skills, years of experience, domain projects, availability. Mention names first, then reasoning.
- Tone: supportive, clear, and professional. Avoid bullet overload; use short paragraphs and compact bullets only when helpful.
- If the query is vague, suggest clarifying questions.
- End with a friendly, action-oriented question.`

// buildAdvisorContext renders the user message combining the query with the
// candidate profiles as JSON.
func buildAdvisorContext(query string, candidates []core.EmployeeProfile) (string, error) {
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("User query: %s\n\nCandidates JSON:\n%s", query, data), nil
}
