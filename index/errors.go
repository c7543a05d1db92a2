package index

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrDuplicateID is returned when two profiles share an id.
	ErrDuplicateID = errors.New("duplicate profile id")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)

// BuildError reports the profiles whose embeddings could not be generated
// after the retry budget was exhausted. It carries enough detail to retry
// selectively.
type BuildError struct {
	// Failed maps profile id to the cause of its failure.
	Failed map[string]error
}

func (e *BuildError) Error() string {
	ids := e.FailedIDs()
	return fmt.Sprintf("index build failed for %d profile(s): %s", len(ids), strings.Join(ids, ", "))
}

// FailedIDs returns the failed profile ids in ascending order.
func (e *BuildError) FailedIDs() []string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Unwrap exposes the underlying causes for errors.Is checks, so a caller can
// still detect e.g. an embedding timeout behind a strict build failure.
func (e *BuildError) Unwrap() []error {
	causes := make([]error, 0, len(e.Failed))
	for _, id := range e.FailedIDs() {
		causes = append(causes, e.Failed[id])
	}
	return causes
}
