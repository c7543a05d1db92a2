package badger

import (
	"context"
	"testing"

	"github.com/poiesic/staffmatch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorCache_GetMissing(t *testing.T) {
	cache, err := NewMemoryVectorCache()
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	entry, err := cache.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestVectorCache_PutGet(t *testing.T) {
	cache, err := NewMemoryVectorCache()
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	entry := &storage.CachedVector{
		Vector:     []float32{0.5, 0.25, -1},
		SourceText: "Alice | Senior Engineer | experience 7 years",
		Model:      "nomic-embed-text",
	}

	require.NoError(t, cache.Put(ctx, "k1", entry))

	got, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Vector, got.Vector)
	assert.Equal(t, entry.SourceText, got.SourceText)
	assert.Equal(t, entry.Model, got.Model)
}

func TestVectorCache_PutReplaces(t *testing.T) {
	cache, err := NewMemoryVectorCache()
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	first := &storage.CachedVector{Vector: []float32{1}, SourceText: "old", Model: "m"}
	second := &storage.CachedVector{Vector: []float32{2}, SourceText: "new", Model: "m"}

	require.NoError(t, cache.Put(ctx, "k", first))
	require.NoError(t, cache.Put(ctx, "k", second))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.SourceText)
	assert.Equal(t, []float32{2}, got.Vector)
}

func TestVectorCache_RequiresBackend(t *testing.T) {
	_, err := NewVectorCache(nil)
	assert.Equal(t, ErrBackendRequired, err)
}

func TestVectorCache_ClosedBackend(t *testing.T) {
	cache, err := NewMemoryVectorCache()
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	ctx := context.Background()
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = cache.Put(ctx, "k", &storage.CachedVector{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
