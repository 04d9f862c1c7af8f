package vecstore

import "context"

// Vector is a single record in the vector store: an identifier, the
// embedding values, and the flat metadata stored alongside them.
type Vector struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// Match is one result of a similarity query, ordered by descending score.
type Match struct {
	ID       string
	Score    float32
	Metadata map[string]any
}

// QueryRequest describes a similarity query against the store.
type QueryRequest struct {
	// Vector is the query embedding.
	Vector []float32

	// TopK is the maximum number of matches to return.
	TopK int

	// Filter restricts matches by metadata equality. A nil filter
	// matches everything.
	Filter map[string]any
}

// IndexStats is a point-in-time snapshot of the store.
type IndexStats struct {
	TotalVectorCount int64   `json:"total_vector_count"`
	Dimension        int     `json:"dimension"`
	IndexFullness    float64 `json:"index_fullness"`
}

// Index is the raw vector store surface. Implementations perform single
// requests with no batching or retry; Client owns that policy.
type Index interface {
	// Upsert writes the vectors, overwriting any with the same ID.
	Upsert(ctx context.Context, vectors []Vector) error

	// Query returns up to TopK matches for the request vector.
	Query(ctx context.Context, req *QueryRequest) ([]Match, error)

	// DeleteByID removes the vectors with the given IDs. Unknown IDs
	// are ignored.
	DeleteByID(ctx context.Context, ids []string) error

	// DescribeStats reports the current index statistics.
	DescribeStats(ctx context.Context) (*IndexStats, error)
}
