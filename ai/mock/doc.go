// Package mock provides a test double implementation of the ai.Embedder
// interface.
//
// The mock allows tests to run without an embedding provider and enables
// controlled, deterministic behavior via function field injection.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	embedder := mock.NewMockEmbedder()
//	vector, err := embedder.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return nil, errors.New("provider unavailable")
//	}
//
//	// Check call counts
//	count := embedder.CallCount()
//
// By default the mock returns deterministic 1536-dimension vectors derived
// from a hash of the input text, so identical texts always embed identically.
package mock
