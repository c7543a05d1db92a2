// Package index builds and holds the in-memory profile index.
//
// The Builder turns a set of employee profiles into an immutable Snapshot:
// one canonical text and one embedding vector per profile, computed through
// a bounded worker pool and keyed by profile id so completion order never
// affects the result. The Holder publishes snapshots behind a single
// atomically-replaceable reference, giving readers lock-free access and
// all-or-nothing visibility of rebuilds.
//
// Embedding failures are retried with exponential backoff. What happens when
// the retry budget runs out depends on the build policy: the default lenient
// policy skips the profile and records it as degraded, while the strict
// policy fails the whole build with a BuildError naming the failed ids.
package index
