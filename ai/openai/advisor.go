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


package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Advisor implements ai.Advisor using OpenAI-compatible chat APIs.
type Advisor struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

var _ ai.Advisor = (*Advisor)(nil)

// newAdvisor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAdvisor(config *ai.Config) (*Advisor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.AdvisorHost),
		openai.WithToken("none"),
		openai.WithModel(config.AdvisorModel),
	)
	if err != nil {
		return nil, err
	}

	return &Advisor{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-advisor"),
	}, nil
}

// NewAdvisor creates a new advisor using the provided configuration.
//
// Returns ai.Advisor interface to enforce abstraction.
func NewAdvisor(config *ai.Config) (ai.Advisor, error) {
	return newAdvisor(config)
}

// Advise produces a conversational staffing recommendation for the ranked
// candidates using the configured chat model.
func (a *Advisor) Advise(ctx context.Context, query string, candidates []core.EmployeeProfile) (string, error) {
	userContent, err := buildAdvisorContext(query, candidates)
	if err != nil {
		return "", err
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(advisorSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userContent),
			},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.3))
	if err != nil {
		a.logger.Error("failed to generate recommendation", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		a.logger.Debug("no choices returned from model")
		return "", fmt.Errorf("advisor returned no choices")
	}

	return response.Choices[0].Content, nil
}
