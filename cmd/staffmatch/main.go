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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/staffmatch"
	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/index"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "staffmatch",
		Usage: "Semantic employee search over team datasets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank employees against a free-text query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     append(datasetFlags(), searchFlags()...),
			},
			{
				Name:      "chat",
				Usage:     "Ask for a conversational staffing recommendation",
				ArgsUsage: "<query>",
				Action:    chatCommand,
				Flags:     append(datasetFlags(), searchFlags()...),
			},
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serveCommand,
				Flags: append(datasetFlags(),
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Address to listen on",
						Value: ":8080",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func datasetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "dataset",
			Aliases:  []string{"d"},
			Usage:    "Path to employee dataset (.json or .csv)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Path to the on-disk embedding cache directory (empty disables caching)",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "AI service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "nomic-embed-text",
		},
		&cli.StringFlag{
			Name:  "advisor-model",
			Usage: "Advisor model name for chat recommendations",
			Value: "llama3.1:8b",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout for individual AI service calls",
			Value: 60 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Fail indexing when any profile cannot be embedded",
		},
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "top-k",
			Aliases: []string{"k"},
			Usage:   "Maximum number of candidates to return",
			Value:   5,
		},
	}
}

// newMatcher builds a matcher from the shared flags and loads the dataset.
func newMatcher(ctx context.Context, c *cli.Context) (*staffmatch.Matcher, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithAdvisorModel(c.String("advisor-model")),
		ai.WithTimeout(c.Duration("timeout")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []staffmatch.MatcherOption{staffmatch.WithAIConfig(aiConfig)}
	if c.String("cache") != "" {
		opts = append(opts, staffmatch.WithVectorCachePath(c.String("cache")))
	}
	if c.Bool("strict") {
		opts = append(opts, staffmatch.WithBuildPolicy(index.PolicyStrict))
	}

	matcher, err := staffmatch.NewMatcher(opts...)
	if err != nil {
		return nil, err
	}

	result, err := matcher.LoadDataset(ctx, c.String("dataset"))
	if err != nil {
		matcher.Close()
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	if len(result.Rejected) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d record(s) rejected during load\n", len(result.Rejected))
	}
	return matcher, nil
}

func queryArg(c *cli.Context) (string, error) {
	q := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if q == "" {
		return "", fmt.Errorf("a query is required")
	}
	return q, nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	q, err := queryArg(c)
	if err != nil {
		return err
	}

	matcher, err := newMatcher(ctx, c)
	if err != nil {
		return err
	}
	defer matcher.Close()

	resp, err := matcher.Search(ctx, q, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Print(resp.RenderText())
	return nil
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()

	q, err := queryArg(c)
	if err != nil {
		return err
	}

	matcher, err := newMatcher(ctx, c)
	if err != nil {
		return err
	}
	defer matcher.Close()

	advice, _, err := matcher.Chat(ctx, q, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	fmt.Println(advice)
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx := context.Background()

	matcher, err := newMatcher(ctx, c)
	if err != nil {
		return err
	}
	defer matcher.Close()

	server := NewServer(matcher)
	fmt.Fprintf(os.Stderr, "Listening on %s\n", c.String("listen"))
	return server.ListenAndServe(c.String("listen"))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
