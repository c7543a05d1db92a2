// Package storage defines the persistence abstractions used by staffmatch.
//
// The matching engine itself is fully in-memory; the only thing worth
// persisting is the embedding cache, which lets an index rebuild reuse
// vectors for profiles whose canonical text has not changed. Correctness
// never depends on the cache: a cold or missing cache only costs extra
// embedding calls.
//
// The storage/badger sub-package provides the production BadgerDB-backed
// implementation of VectorCache.
package storage
