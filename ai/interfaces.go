package ai

import (
	"context"

	"github.com/poiesic/staffmatch/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
//
// Implementations perform no retries of their own; callers that need a retry
// budget wrap calls themselves. The external model does not guarantee
// bit-identical vectors for identical input across calls, only vectors that
// are self-consistent enough for similarity comparison.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The text must be non-empty after trimming whitespace.
	// Returns ErrEmbeddingTimeout if the configured bound elapses and
	// ErrEmbeddingUnavailable if the external service cannot be reached.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Advisor turns a staffing query and its ranked candidates into a short
// natural-language recommendation.
// Implementations must be thread-safe for concurrent use.
type Advisor interface {
	// Advise produces a conversational answer recommending the best matches
	// among the candidates, with reasoning about skills, experience, and
	// availability. Candidates are passed in rank order.
	Advise(ctx context.Context, query string, candidates []core.EmployeeProfile) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Advisor instances, ensuring they
// share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Advisor returns the recommendation service.
	// The returned Advisor is safe for concurrent use.
	Advisor() Advisor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
