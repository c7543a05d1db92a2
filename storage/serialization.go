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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MarshalCachedVector serializes a CachedVector to bytes.
// Layout: vector length, vector elements, source text, model.
func MarshalCachedVector(entry *CachedVector) []byte {
	size := varint.PositiveInt.Size(len(entry.Vector))
	for _, v := range entry.Vector {
		size += varint.Float32.Size(v)
	}
	size += ord.String.Size(entry.SourceText)
	size += ord.String.Size(entry.Model)

	buf := make([]byte, size)
	n := varint.PositiveInt.Marshal(len(entry.Vector), buf)
	for _, v := range entry.Vector {
		n += varint.Float32.Marshal(v, buf[n:])
	}
	n += ord.String.Marshal(entry.SourceText, buf[n:])
	ord.String.Marshal(entry.Model, buf[n:])
	return buf
}

// UnmarshalCachedVector deserializes a CachedVector from bytes.
func UnmarshalCachedVector(data []byte) (*CachedVector, error) {
	length, n, err := varint.PositiveInt.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: vector length: %w", ErrSerializationFailed, err)
	}

	vector := make([]float32, length)
	for i := 0; i < length; i++ {
		v, m, err := varint.Float32.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: vector element %d: %w", ErrSerializationFailed, i, err)
		}
		vector[i] = v
		n += m
	}

	sourceText, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: source text: %w", ErrSerializationFailed, err)
	}
	n += m

	model, _, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: model: %w", ErrSerializationFailed, err)
	}

	return &CachedVector{
		Vector:     vector,
		SourceText: sourceText,
		Model:      model,
	}, nil
}
