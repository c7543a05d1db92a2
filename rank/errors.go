package rank

import "errors"

var (
	// ErrInvalidTopK is returned when the requested result count is not positive.
	ErrInvalidTopK = errors.New("top_k must be greater than 0")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrSnapshotRequired is returned when ranking is attempted without an index.
	ErrSnapshotRequired = errors.New("index snapshot required")
)
