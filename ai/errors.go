package ai

import "errors"

var (
	// ErrEmptyText is returned when text to embed is empty after trimming.
	ErrEmptyText = errors.New("text to embed is empty")

	// ErrEmbeddingUnavailable is returned when the embedding service cannot
	// be reached or rejects the request.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrEmbeddingTimeout is returned when no embedding response arrives
	// within the configured bound.
	ErrEmbeddingTimeout = errors.New("embedding request timed out")
)
