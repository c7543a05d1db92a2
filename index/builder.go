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


package index

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/storage"
)

// Policy decides what a build does when a profile's embedding cannot be
// generated after the retry budget is exhausted.
type Policy int

const (
	// PolicyLenient skips the failing profile and records it as degraded.
	PolicyLenient Policy = iota
	// PolicyStrict aborts the whole build with a BuildError.
	PolicyStrict
)

// Builder constructs index snapshots from employee profiles.
// Embedding calls run concurrently through a bounded worker pool; results
// are assembled keyed by profile id, so completion order is irrelevant.
type Builder struct {
	embedder         ai.Embedder
	cache            storage.VectorCache // optional
	cacheModel       string
	pool             *ants.Pool
	maxRetries       int
	retryBaseDelay   time.Duration
	policy           Policy
	progressWriter   io.Writer
	progressInterval int
	logger           *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}

		if b.pool != nil {
			b.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithPolicy sets the build policy. Default is PolicyLenient.
func WithPolicy(policy Policy) Option {
	return func(b *Builder) error {
		b.policy = policy
		return nil
	}
}

// WithRetry sets the retry budget for embedding calls.
// Defaults are 3 attempts with a 1s base delay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(b *Builder) error {
		if maxAttempts < 1 {
			return ErrInvalidMaxAttempts
		}
		b.maxRetries = maxAttempts
		b.retryBaseDelay = baseDelay
		return nil
	}
}

// WithVectorCache enables the embedding cache. Entries are keyed by a
// content hash of the model and canonical text, and verified against the
// stored source text on read, so stale entries are simply misses.
func WithVectorCache(cache storage.VectorCache, model string) Option {
	return func(b *Builder) error {
		b.cache = cache
		b.cacheModel = model
		return nil
	}
}

// WithProgress reports build progress to w every interval profiles.
func WithProgress(w io.Writer, interval int) Option {
	return func(b *Builder) error {
		b.progressWriter = w
		b.progressInterval = interval
		return nil
	}
}

// NewBuilder creates a new index builder.
func NewBuilder(embedder ai.Embedder, opts ...Option) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		embedder:       embedder,
		pool:           pool,
		maxRetries:     3,
		retryBaseDelay: 1 * time.Second,
		policy:         PolicyLenient,
		logger:         slog.Default().With("component", "index-builder"),
	}

	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}

	return b, nil
}

// Build embeds every profile and assembles an immutable snapshot.
// The input slice is not retained. An empty profile set yields a valid
// empty snapshot.
func (b *Builder) Build(ctx context.Context, profiles []core.EmployeeProfile) (*Snapshot, error) {
	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if _, dup := seen[p.Id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.Id)
		}
		seen[p.Id] = struct{}{}
	}

	b.logger.Info("building index", "profiles", len(profiles))

	var tracker *ProgressTracker
	if b.progressWriter != nil {
		tracker = NewProgressTracker(b.progressWriter, len(profiles), b.progressInterval)
		tracker.Start()
	}

	vectors := make([][]float32, len(profiles))
	failures := make([]error, len(profiles))

	var wg sync.WaitGroup
	for i := range profiles {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			vectors[i], failures[i] = b.embedProfile(ctx, &profiles[i])
			if tracker != nil {
				tracker.Increment(1)
			}
		}
		if err := b.pool.Submit(task); err != nil {
			failures[i] = err
			wg.Done()
		}
	}
	wg.Wait()

	if tracker != nil {
		tracker.Finish()
	}

	// Assemble keyed by id. The first successful vector fixes the expected
	// dimensionality; mismatches count as failures of their profile.
	included := make(map[string]core.EmployeeProfile, len(profiles))
	byId := make(map[string][]float32, len(profiles))
	failed := make(map[string]error)
	dimension := 0

	for i, p := range profiles {
		if failures[i] != nil {
			failed[p.Id] = failures[i]
			continue
		}
		if dimension == 0 {
			dimension = len(vectors[i])
		} else if len(vectors[i]) != dimension {
			failed[p.Id] = fmt.Errorf("embedding dimension %d, want %d", len(vectors[i]), dimension)
			continue
		}
		included[p.Id] = p
		byId[p.Id] = vectors[i]
	}

	degraded := make([]string, 0, len(failed))
	if len(failed) > 0 {
		if b.policy == PolicyStrict {
			return nil, &BuildError{Failed: failed}
		}
		for id, err := range failed {
			b.logger.Warn("skipping profile after embedding failure", "id", id, "err", err)
			degraded = append(degraded, id)
		}
	}

	snapshot := newSnapshot(included, byId, degraded)
	b.logger.Info("index built", "indexed", snapshot.Len(), "degraded", len(degraded), "dimension", snapshot.Dimension())
	return snapshot, nil
}

// Release releases the worker pool.
// The builder should not be used after calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}

// embedProfile returns the vector for one profile, consulting the cache
// first and falling back to the embedder with the retry budget.
func (b *Builder) embedProfile(ctx context.Context, profile *core.EmployeeProfile) ([]float32, error) {
	text := CanonicalText(profile)
	key := cacheKey(b.cacheModel, text)

	if b.cache != nil {
		entry, err := b.cache.Get(ctx, key)
		if err != nil {
			b.logger.Warn("vector cache read failed", "id", profile.Id, "err", err)
		} else if entry != nil && entry.SourceText == text && entry.Model == b.cacheModel {
			return entry.Vector, nil
		}
	}

	var vector []float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vector, embedErr = b.embedder.EmbedText(ctx, text)
		return embedErr
	}, b.maxRetries, b.retryBaseDelay)
	if err != nil {
		return nil, err
	}

	if b.cache != nil {
		entry := &storage.CachedVector{Vector: vector, SourceText: text, Model: b.cacheModel}
		if err := b.cache.Put(ctx, key, entry); err != nil {
			b.logger.Warn("vector cache write failed", "id", profile.Id, "err", err)
		}
	}

	return vector, nil
}

func cacheKey(model, text string) string {
	return core.IDFromContent(model + "\x00" + text)
}
