package storage

import "context"

// CachedVector is a persisted embedding together with the text it was
// generated from. SourceText is retained for cache invalidation and
// debugging; a hit is only valid when the stored source text matches the
// current canonical text.
type CachedVector struct {
	Vector     []float32
	SourceText string
	Model      string
}

// VectorCache persists computed embeddings keyed by content hash.
// Implementations must be thread-safe and support concurrent access.
type VectorCache interface {
	// Get retrieves a cached vector by key.
	// Returns nil, nil when the key is absent.
	Get(ctx context.Context, key string) (*CachedVector, error)

	// Put stores a vector under the key, replacing any previous entry.
	Put(ctx context.Context, key string, entry *CachedVector) error

	// Close closes the cache backend and releases resources.
	Close() error
}
