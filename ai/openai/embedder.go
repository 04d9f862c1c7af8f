package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/tandamark/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// estimatedCharsPerToken is the rough ratio used to size batches
	// without calling a tokenizer.
	estimatedCharsPerToken = 4

	// longTextTokenThreshold marks the estimated per-item token count
	// above which texts are considered long and batched conservatively.
	longTextTokenThreshold = 500

	// maxTokensPerBatch caps the estimated token total of a single request.
	maxTokensPerBatch = 8000

	longTextBatchSize  = 5
	shortTextBatchSize = 20
)

// Embedder implements ai.Embedder using OpenAI-compatible embedding APIs.
type Embedder struct {
	embedder embeddings.Embedder
	logger   *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication.
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken(config.APIKey),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder: embedder,
		logger:   slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("generating embedding for single text", "length", len(text))

	embeddings, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}

	if len(embeddings) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float32{}, nil
	}

	return embeddings[0], nil
}

// EmbedTexts generates vector embeddings for multiple text strings.
//
// The input is split into sub-batches sized by planBatchSize, submitted
// sequentially, and concatenated in input order. Any sub-batch failure
// aborts the whole call with no partial results.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	batchSize := planBatchSize(texts)
	e.logger.Debug("generating embeddings for texts",
		"count", len(texts), "batchSize", batchSize)

	results := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))

		vectors, err := e.embedder.EmbedDocuments(ctx, texts[start:end])
		if err != nil {
			e.logger.Error("failed to generate embeddings",
				"batchStart", start, "batchSize", end-start, "err", err)
			return nil, err
		}

		results = append(results, vectors...)
	}

	return results, nil
}

// planBatchSize chooses a batch size from the average estimated token
// count of the inputs. Long texts get small batches, and the batch is
// shrunk further so its estimated token total stays under the request cap.
func planBatchSize(texts []string) int {
	totalChars := 0
	for _, t := range texts {
		totalChars += len(t)
	}
	avgChars := totalChars / len(texts)
	estTokens := avgChars / estimatedCharsPerToken

	batchSize := shortTextBatchSize
	if estTokens > longTextTokenThreshold {
		batchSize = longTextBatchSize
	}

	if estTokens > 0 {
		for batchSize > 1 && batchSize*estTokens > maxTokensPerBatch {
			batchSize--
		}
	}

	return batchSize
}
