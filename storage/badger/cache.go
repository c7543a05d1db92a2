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


package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/staffmatch/storage"
)

// VectorCache implements storage.VectorCache for BadgerDB.
type VectorCache struct {
	backend *Backend
}

var _ storage.VectorCache = (*VectorCache)(nil)

// NewVectorCache creates a new VectorCache on the given backend.
func NewVectorCache(backend *Backend) (*VectorCache, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &VectorCache{backend: backend}, nil
}

// Get retrieves a cached vector by key.
// Returns nil, nil when the key is absent.
func (c *VectorCache) Get(ctx context.Context, key string) (*storage.CachedVector, error) {
	if c.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entry *storage.CachedVector
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorCacheKey(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			entry, unmarshalErr = storage.UnmarshalCachedVector(val)
			return unmarshalErr
		})
	}, false)

	return entry, err
}

// Put stores a vector under the key, replacing any previous entry.
func (c *VectorCache) Put(ctx context.Context, key string, entry *storage.CachedVector) error {
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalCachedVector(entry)
		if err := tx.Set(makeVectorCacheKey(key), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (c *VectorCache) Close() error {
	return c.backend.Close()
}
