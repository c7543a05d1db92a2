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


package query

import (
	"log/slog"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// Interpreter extracts structured intent from free-form search requests.
type Interpreter struct {
	logger *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) error {
		if logger == nil {
			logger = slog.Default()
		}
		i.logger = logger
		return nil
	}
}

// NewInterpreter creates a new query interpreter.
func NewInterpreter(opts ...Option) (*Interpreter, error) {
	i := &Interpreter{
		logger: slog.Default().With("component", "query-interpreter"),
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// Interpret derives intent from a raw query. The skill vocabulary is the set
// of lowercased skills present in the current index; only skills from the
// vocabulary become required-skill filters. Interpret never fails: a query
// with no recognizable signals yields an intent with empty filters whose
// semantic text is the query itself.
func (i *Interpreter) Interpret(rawQuery string, vocabulary []string) core.QueryIntent {
	trimmed := strings.TrimSpace(rawQuery)
	lower := strings.ToLower(trimmed)

	intent := core.QueryIntent{
		RawQuery:         rawQuery,
		SemanticText:     trimmed,
		MinExperience:    extractMinExperience(lower),
		RequiredSkills:   extractSkills(lower, vocabulary),
		RequireAvailable: mentionsAvailability(lower),
	}

	i.logger.Debug("interpreted query",
		"skills", intent.RequiredSkills,
		"min_experience", intent.MinExperience,
		"require_available", intent.RequireAvailable)

	return intent
}

// containsTerm reports whether term occurs in haystack on word boundaries.
// Both arguments must already be lowercased.
func containsTerm(haystack, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isWordChar(haystack[idx-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
