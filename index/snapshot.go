package index

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/poiesic/staffmatch/core"
)

// Snapshot is an immutable view of the indexed profiles: one vector per
// profile, keyed by id. Snapshots are never mutated after construction, so
// they can be read concurrently without locks.
type Snapshot struct {
	profiles   map[string]core.EmployeeProfile
	vectors    map[string][]float32
	order      []string // profile ids in ascending order
	vocabulary []string // lowercased skill names present in the index, sorted
	dimension  int
	degraded   []string // ids skipped under the lenient build policy
	builtAt    time.Time
}

func newSnapshot(profiles map[string]core.EmployeeProfile, vectors map[string][]float32, degraded []string) *Snapshot {
	order := make([]string, 0, len(profiles))
	vocabSet := make(map[string]struct{})
	for id, p := range profiles {
		order = append(order, id)
		for _, skill := range p.Skills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill != "" {
				vocabSet[skill] = struct{}{}
			}
		}
	}
	sort.Strings(order)

	vocabulary := make([]string, 0, len(vocabSet))
	for skill := range vocabSet {
		vocabulary = append(vocabulary, skill)
	}
	sort.Strings(vocabulary)

	dimension := 0
	for _, v := range vectors {
		dimension = len(v)
		break
	}

	sort.Strings(degraded)

	return &Snapshot{
		profiles:   profiles,
		vectors:    vectors,
		order:      order,
		vocabulary: vocabulary,
		dimension:  dimension,
		degraded:   degraded,
		builtAt:    time.Now().UTC(),
	}
}

// Len returns the number of indexed profiles.
func (s *Snapshot) Len() int {
	return len(s.order)
}

// IDs returns the indexed profile ids in ascending order.
// The returned slice is shared and must not be modified.
func (s *Snapshot) IDs() []string {
	return s.order
}

// Profile returns the profile for an id.
func (s *Snapshot) Profile(id string) (core.EmployeeProfile, bool) {
	p, ok := s.profiles[id]
	return p, ok
}

// Vector returns the embedding vector for an id.
// The returned slice is shared and must not be modified.
func (s *Snapshot) Vector(id string) ([]float32, bool) {
	v, ok := s.vectors[id]
	return v, ok
}

// SkillVocabulary returns the lowercased skill names present in the index,
// sorted. The query interpreter matches required skills against this.
// The returned slice is shared and must not be modified.
func (s *Snapshot) SkillVocabulary() []string {
	return s.vocabulary
}

// Dimension returns the embedding dimensionality, or 0 for an empty index.
func (s *Snapshot) Dimension() int {
	return s.dimension
}

// Degraded returns the ids skipped under the lenient build policy, sorted.
func (s *Snapshot) Degraded() []string {
	return s.degraded
}

// BuiltAt returns when the snapshot was constructed.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// Holder publishes the current snapshot behind a single atomic reference.
// Rebuilds construct a new snapshot off to the side and swap it in with
// Replace; readers always see a complete index, old or new, never a mix.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a holder with no snapshot published yet.
func NewHolder() *Holder {
	return &Holder{}
}

// Current returns the published snapshot, or nil before the first Replace.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Replace atomically publishes a new snapshot.
func (h *Holder) Replace(snapshot *Snapshot) {
	h.current.Store(snapshot)
}
