// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package respond

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/index"
)

// Candidate is one ranked employee in a response.
type Candidate struct {
	Id              string   `json:"id"`
	Rank            int      `json:"rank"`
	Name            string   `json:"name"`
	Title           string   `json:"title,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Availability    string   `json:"availability"`
	Score           float64  `json:"score"`
	MatchedCriteria []string `json:"matched_criteria,omitempty"`
}

// Response is the full answer to one search request.
type Response struct {
	Query      string      `json:"query"`
	Candidates []Candidate `json:"candidates"`
	Total      int         `json:"total"`
}

// Build assembles a response from ranked results. Every result id must
// resolve in the snapshot the ranking was computed against; a miss returns
// ErrUnknownProfile. An empty result list builds an empty, valid response.
func Build(intent core.QueryIntent, results []core.RankedResult, snapshot *index.Snapshot) (*Response, error) {
	candidates := make([]Candidate, 0, len(results))
	for _, res := range results {
		profile, ok := snapshot.Profile(res.ProfileID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, res.ProfileID)
		}

		candidates = append(candidates, Candidate{
			Id:              profile.Id,
			Rank:            res.Rank,
			Name:            profile.Name,
			Title:           profile.Title,
			Skills:          profile.Skills,
			ExperienceYears: profile.ExperienceYears,
			Availability:    profile.Availability.String(),
			Score:           roundScore(res.Score),
			MatchedCriteria: matchedCriteria(intent, res),
		})
	}

	return &Response{
		Query:      intent.RawQuery,
		Candidates: candidates,
		Total:      len(candidates),
	}, nil
}

// RenderText produces the human-readable form used by the CLI.
func (r *Response) RenderText() string {
	if len(r.Candidates) == 0 {
		return "No matching employees found.\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d matching employee(s):\n\n", r.Total)
	for _, c := range r.Candidates {
		fmt.Fprintf(&sb, "%d. %s", c.Rank, c.Name)
		if c.Title != "" {
			fmt.Fprintf(&sb, ", %s", c.Title)
		}
		fmt.Fprintf(&sb, " (score %.4f)\n", c.Score)
		fmt.Fprintf(&sb, "   %s yrs, %s. Skills: %s\n",
			strconv.FormatFloat(c.ExperienceYears, 'f', -1, 64),
			c.Availability,
			strings.Join(c.Skills, ", "))
		if len(c.MatchedCriteria) > 0 {
			fmt.Fprintf(&sb, "   Matched: %s\n", strings.Join(c.MatchedCriteria, ", "))
		}
	}
	return sb.String()
}

// matchedCriteria explains which of the intent's filters a candidate met.
func matchedCriteria(intent core.QueryIntent, res core.RankedResult) []string {
	var criteria []string
	for _, skill := range res.MatchedSkills {
		criteria = append(criteria, "skill:"+skill)
	}
	if intent.MinExperience != nil && res.MeetsExperience {
		criteria = append(criteria, "experience>="+strconv.FormatFloat(*intent.MinExperience, 'f', -1, 64))
	}
	if intent.RequireAvailable && res.MeetsAvailability {
		criteria = append(criteria, "available")
	}
	return criteria
}

// roundScore rounds to 4 decimal places for stable presentation.
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
