package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings.
	// The input may be split into several provider requests to respect the
	// provider's token budget; batching is transparent to callers. The
	// returned slice contains embeddings in the same order as the input
	// texts, and an empty input yields an empty result.
	// Returns an error if any batch fails; there are no partial results.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
