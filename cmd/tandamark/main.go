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
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/tandamark"
	"github.com/poiesic/tandamark/ai"
	"github.com/poiesic/tandamark/ai/openai"
	"github.com/poiesic/tandamark/extract"
	"github.com/poiesic/tandamark/storage"
	storagebadger "github.com/poiesic/tandamark/storage/badger"
	"github.com/poiesic/tandamark/vecstore"
	"github.com/poiesic/tandamark/vecstore/pinecone"
)

func main() {
	app := &cli.App{
		Name:  "tandamark",
		Usage: "Trademark gazette ingestion and similarity search",
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
				Name:      "ingest",
				Usage:     "Ingest gazette text files into the vector store",
				ArgsUsage: "<file> [file...]",
				Action:    ingestCommand,
				Flags: append(connectionFlags(),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of files to ingest concurrently",
						Value: 2,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search for trademarks similar to a name",
				ArgsUsage: "<trademark name>",
				Action:    searchCommand,
				Flags: append(connectionFlags(),
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum vector score for candidates",
						Value: 0.15,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of candidates to recall",
						Value: 10,
					},
				),
			},
			{
				Name:      "delete",
				Usage:     "Delete a document and all its vectors",
				ArgsUsage: "<document-id>",
				Action:    deleteCommand,
				Flags:     connectionFlags(),
			},
			{
				Name:   "stats",
				Usage:  "Show index and configuration statistics",
				Action: statsCommand,
				Flags:  connectionFlags(),
			},
			{
				Name:   "documents",
				Usage:  "List ingested documents",
				Action: documentsCommand,
				Flags:  connectionFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the document ledger directory",
			Value:   "./tandamark-db",
		},
		&cli.StringFlag{
			Name:    "openai-api-key",
			Usage:   "API key for the embedding provider",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			Value:   "https://api.openai.com/v1",
			EnvVars: []string{"EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "text-embedding-3-small",
			EnvVars: []string{"EMBEDDING_MODEL"},
		},
		&cli.IntFlag{
			Name:  "dimension",
			Usage: "Embedding vector dimension",
			Value: 1536,
		},
		&cli.StringFlag{
			Name:    "pinecone-api-key",
			Usage:   "Pinecone API key",
			EnvVars: []string{"PINECONE_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "pinecone-index",
			Usage:   "Pinecone index name",
			EnvVars: []string{"PINECONE_INDEX_NAME"},
		},
		&cli.StringFlag{
			Name:    "pinecone-host",
			Usage:   "Pinecone index host (skips the control plane lookup)",
			EnvVars: []string{"PINECONE_INDEX_HOST"},
		},
		&cli.StringFlag{
			Name:    "pinecone-namespace",
			Usage:   "Pinecone namespace",
			EnvVars: []string{"PINECONE_NAMESPACE"},
		},
	}
}

func buildService(c *cli.Context) (*tandamark.Service, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithAPIKey(c.String("openai-api-key")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithDimension(c.Int("dimension")),
	)

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	index, err := pinecone.NewIndex(&pinecone.Config{
		APIKey:    c.String("pinecone-api-key"),
		IndexName: c.String("pinecone-index"),
		IndexHost: c.String("pinecone-host"),
		Namespace: c.String("pinecone-namespace"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to pinecone: %w", err)
	}

	store, err := vecstore.NewClient(index, vecstore.WithDimension(c.Int("dimension")))
	if err != nil {
		return nil, err
	}

	var ledger storage.DocumentLedger
	backend, err := storagebadger.OpenBackend(c.String("db"), false)
	if err != nil {
		return nil, fmt.Errorf("failed to open document ledger: %w", err)
	}
	ledger = storagebadger.NewLedger(backend)

	opts := []tandamark.ServiceOption{
		tandamark.WithModelInfo(c.String("embedding-model"), c.Int("dimension")),
	}
	if c.IsSet("threshold") || c.IsSet("top-k") {
		opts = append(opts, tandamark.WithSearchDefaults(c.Float64("threshold"), c.Int("top-k")))
	}

	return tandamark.NewService(extract.NewExtractor(), embedder, store, ledger, opts...), nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	service, err := buildService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	workers := c.Int("workers")
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	ctx := context.Background()
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)

	for _, path := range c.Args().Slice() {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			data, err := os.ReadFile(path)
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", path, err))
				mu.Unlock()
				return
			}

			result, err := service.IngestDocument(ctx, string(data), filepath.Base(path))
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", path, err))
				mu.Unlock()
				return
			}

			fmt.Printf("%s: document %s, %d records (%d stored, %d failed)\n",
				path, result.DocumentId, result.RecordCount, result.Processed, result.Failed)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("failed to submit ingest task: %w", err)
		}
	}
	wg.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("%d file(s) failed:\n%s", len(failures), strings.Join(failures, "\n"))
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one trademark name is required")
	}

	service, err := buildService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	report := service.Search(context.Background(), c.Args().First())
	return printJSON(report)
}

func deleteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one document id is required")
	}

	service, err := buildService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	documentID := c.Args().First()
	deleted, err := service.DeleteDocument(context.Background(), documentID)
	if err != nil {
		return err
	}

	fmt.Printf("deleted %d vectors for document %s\n", deleted, documentID)
	return nil
}

func statsCommand(c *cli.Context) error {
	service, err := buildService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	return printJSON(service.Stats(context.Background()))
}

func documentsCommand(c *cli.Context) error {
	service, err := buildService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	documents, err := service.Documents(context.Background())
	if err != nil {
		return err
	}
	return printJSON(documents)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
