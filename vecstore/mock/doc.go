// Package mock provides an in-memory test double for the vecstore.Index
// interface.
//
// MockIndex stores vectors in a map, answers queries by cosine similarity
// with equality filtering on metadata, and supports function field
// injection for failure scenarios:
//
//	index := mock.NewMockIndex()
//	index.UpsertFunc = func(ctx context.Context, vectors []vecstore.Vector) error {
//	    return errors.New("unavailable")
//	}
package mock
