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


package rank

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/index"
)

// Ranker scores snapshot profiles against interpreted queries.
type Ranker struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(embedder ai.Embedder, opts ...Option) (*Ranker, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Ranker{
		embedder: embedder,
		logger:   slog.Default().With("component", "ranker"),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Rank returns the top candidates for an intent, best first. The score is
// the cosine similarity between the query embedding and each candidate's
// indexed vector; profiles failing the intent's hard filters are excluded
// before scoring. Equal scores order by ascending profile id. Fewer than
// topK results, including none at all, is a successful outcome.
//
// An embedding failure fails the whole request; Rank never silently falls
// back to a non-semantic ordering.
func (r *Ranker) Rank(ctx context.Context, snapshot *index.Snapshot, intent core.QueryIntent, topK int) ([]core.RankedResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopK, topK)
	}
	if snapshot == nil {
		return nil, ErrSnapshotRequired
	}
	if snapshot.Len() == 0 {
		return []core.RankedResult{}, nil
	}

	queryVector, err := r.embedder.EmbedText(ctx, intent.SemanticText)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results := make([]core.RankedResult, 0, snapshot.Len())
	for _, id := range snapshot.IDs() {
		profile, ok := snapshot.Profile(id)
		if !ok {
			continue
		}
		if !passesFilters(&profile, &intent) {
			continue
		}
		vector, ok := snapshot.Vector(id)
		if !ok {
			continue
		}

		similarity := CosineSimilarity(queryVector, vector)
		results = append(results, core.RankedResult{
			ProfileID:         id,
			Score:             similarity,
			Similarity:        similarity,
			MatchedSkills:     matchedSkills(&profile, &intent),
			MeetsExperience:   intent.MinExperience == nil || profile.ExperienceYears >= *intent.MinExperience,
			MeetsAvailability: profile.Availability == core.AvailabilityAvailable,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ProfileID < results[j].ProfileID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	r.logger.Debug("ranked candidates", "considered", snapshot.Len(), "returned", len(results))
	return results, nil
}
