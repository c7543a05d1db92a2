package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedVectorRoundTrip(t *testing.T) {
	entry := &CachedVector{
		Vector:     []float32{0.25, -1.5, 0, 3.125},
		SourceText: "Alice Johnson | Senior Engineer | experience 7 years | Python, Go",
		Model:      "nomic-embed-text",
	}

	data := MarshalCachedVector(entry)
	require.NotEmpty(t, data)

	got, err := UnmarshalCachedVector(data)
	require.NoError(t, err)
	assert.Equal(t, entry.Vector, got.Vector)
	assert.Equal(t, entry.SourceText, got.SourceText)
	assert.Equal(t, entry.Model, got.Model)
}

func TestCachedVectorRoundTrip_EmptyVector(t *testing.T) {
	entry := &CachedVector{
		Vector:     []float32{},
		SourceText: "text",
		Model:      "m",
	}

	got, err := UnmarshalCachedVector(MarshalCachedVector(entry))
	require.NoError(t, err)
	assert.Empty(t, got.Vector)
	assert.Equal(t, "text", got.SourceText)
}

func TestUnmarshalCachedVector_Truncated(t *testing.T) {
	entry := &CachedVector{
		Vector:     []float32{1, 2, 3},
		SourceText: "some source text",
		Model:      "model",
	}
	data := MarshalCachedVector(entry)

	_, err := UnmarshalCachedVector(data[:len(data)/2])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSerializationFailed))
}
