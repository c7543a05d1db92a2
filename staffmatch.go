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


package staffmatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/ai/openai"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/dataset"
	"github.com/poiesic/staffmatch/index"
	"github.com/poiesic/staffmatch/query"
	"github.com/poiesic/staffmatch/rank"
	"github.com/poiesic/staffmatch/respond"
	"github.com/poiesic/staffmatch/storage"
	"github.com/poiesic/staffmatch/storage/badger"
)

// ErrNotIndexed is returned by query operations before the first successful
// Reindex.
var ErrNotIndexed = errors.New("no index built yet")

// Matcher is the top-level entry point: it owns the dataset, the index
// lifecycle, and the query pipeline. Queries are lock-free against the
// current snapshot; loading and reindexing serialize on an internal mutex.
type Matcher struct {
	backend     *badger.Backend // nil when the vector cache is disabled
	cache       storage.VectorCache
	provider    ai.AIProvider
	builder     *index.Builder
	holder      *index.Holder
	interpreter *query.Interpreter
	ranker      *rank.Ranker
	logger      *slog.Logger

	mu       sync.Mutex
	profiles []core.EmployeeProfile
}

// MatcherOption configures a Matcher.
type MatcherOption func(*matcherOptions)

type matcherOptions struct {
	aiConfig  *ai.Config
	provider  ai.AIProvider
	cachePath string
	policy    index.Policy
	poolSize  int
}

// WithAIConfig sets the AI service configuration used to build the default
// provider.
func WithAIConfig(cfg *ai.Config) MatcherOption {
	return func(o *matcherOptions) {
		o.aiConfig = cfg
	}
}

// WithProvider overrides the AI provider entirely. Used in tests to inject
// a deterministic provider.
func WithProvider(provider ai.AIProvider) MatcherOption {
	return func(o *matcherOptions) {
		o.provider = provider
	}
}

// WithVectorCachePath enables the on-disk embedding cache at the given path.
func WithVectorCachePath(path string) MatcherOption {
	return func(o *matcherOptions) {
		o.cachePath = path
	}
}

// WithBuildPolicy sets the index build policy. Default is lenient.
func WithBuildPolicy(policy index.Policy) MatcherOption {
	return func(o *matcherOptions) {
		o.policy = policy
	}
}

// WithPoolSize sets the embedding worker pool size.
func WithPoolSize(size int) MatcherOption {
	return func(o *matcherOptions) {
		o.poolSize = size
	}
}

// NewMatcher creates a matcher. The index is empty until the first Reindex.
func NewMatcher(opts ...MatcherOption) (*Matcher, error) {
	options := &matcherOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		p, err := openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
		provider = p
	}

	var backend *badger.Backend
	var cache storage.VectorCache
	if options.cachePath != "" {
		b, err := badger.OpenBackend(options.cachePath, false)
		if err != nil {
			provider.Close()
			return nil, err
		}
		c, err := badger.NewVectorCache(b)
		if err != nil {
			b.Close()
			provider.Close()
			return nil, err
		}
		backend = b
		cache = c
	}

	builderOpts := []index.Option{index.WithPolicy(options.policy)}
	if options.poolSize > 0 {
		builderOpts = append(builderOpts, index.WithPoolSize(options.poolSize))
	}
	if cache != nil {
		builderOpts = append(builderOpts, index.WithVectorCache(cache, options.aiConfig.EmbeddingModel))
	}

	builder, err := index.NewBuilder(provider.Embedder(), builderOpts...)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		provider.Close()
		return nil, err
	}

	interpreter, err := query.NewInterpreter()
	if err != nil {
		builder.Release()
		if cache != nil {
			cache.Close()
		}
		provider.Close()
		return nil, err
	}

	ranker, err := rank.NewRanker(provider.Embedder())
	if err != nil {
		builder.Release()
		if cache != nil {
			cache.Close()
		}
		provider.Close()
		return nil, err
	}

	return &Matcher{
		backend:     backend,
		cache:       cache,
		provider:    provider,
		builder:     builder,
		holder:      index.NewHolder(),
		interpreter: interpreter,
		ranker:      ranker,
		logger:      slog.Default().With("component", "matcher"),
	}, nil
}

// LoadDataset loads a dataset file, merges it into the known profiles by id,
// and rebuilds the index. Returns the load result so callers can report
// rejected records.
func (m *Matcher) LoadDataset(ctx context.Context, path string) (*dataset.LoadResult, error) {
	result, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := m.AddProfiles(ctx, result.Profiles); err != nil {
		return nil, err
	}
	return result, nil
}

// AddProfiles merges profiles into the dataset by id (replacing existing
// entries, appending new ones) and rebuilds the index.
func (m *Matcher) AddProfiles(ctx context.Context, profiles []core.EmployeeProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles = dataset.Merge(m.profiles, profiles)
	return m.reindexLocked(ctx)
}

// Reindex rebuilds the index from the current dataset and atomically swaps
// it in. Queries running during a rebuild keep seeing the old snapshot.
func (m *Matcher) Reindex(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reindexLocked(ctx)
}

func (m *Matcher) reindexLocked(ctx context.Context) error {
	snapshot, err := m.builder.Build(ctx, m.profiles)
	if err != nil {
		return err
	}
	m.holder.Replace(snapshot)
	return nil
}

// Search interprets a query against the current snapshot, ranks candidates,
// and formats the response.
func (m *Matcher) Search(ctx context.Context, rawQuery string, topK int) (*respond.Response, error) {
	snapshot := m.holder.Current()
	if snapshot == nil {
		return nil, ErrNotIndexed
	}

	intent := m.interpreter.Interpret(rawQuery, snapshot.SkillVocabulary())
	results, err := m.ranker.Rank(ctx, snapshot, intent, topK)
	if err != nil {
		return nil, err
	}
	return respond.Build(intent, results, snapshot)
}

// Chat runs a search and asks the advisor for a conversational
// recommendation over the top candidates. When the advisor is unreachable
// the plain text rendering of the results is returned instead, so the chat
// surface degrades rather than fails.
func (m *Matcher) Chat(ctx context.Context, rawQuery string, topK int) (string, *respond.Response, error) {
	resp, err := m.Search(ctx, rawQuery, topK)
	if err != nil {
		return "", nil, err
	}

	snapshot := m.holder.Current()
	candidates := make([]core.EmployeeProfile, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		if profile, ok := snapshot.Profile(c.Id); ok {
			candidates = append(candidates, profile)
		}
	}

	advice, err := m.provider.Advisor().Advise(ctx, rawQuery, candidates)
	if err != nil {
		m.logger.Warn("advisor unavailable, returning plain results", "err", err)
		return resp.RenderText(), resp, nil
	}
	return advice, resp, nil
}

// Snapshot returns the current index snapshot, or nil before the first
// Reindex.
func (m *Matcher) Snapshot() *index.Snapshot {
	return m.holder.Current()
}

// Profiles returns a copy of the current dataset.
func (m *Matcher) Profiles() []core.EmployeeProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]core.EmployeeProfile, len(m.profiles))
	copy(out, m.profiles)
	return out
}

// Close releases the worker pool, the vector cache, and the AI provider.
func (m *Matcher) Close() error {
	m.builder.Release()

	if err := m.provider.Close(); err != nil {
		m.logger.Error("error closing AI provider", "err", err)
	}

	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			m.logger.Error("error closing vector cache", "err", err)
			return err
		}
	}
	return nil
}
