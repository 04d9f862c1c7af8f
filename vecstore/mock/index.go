package mock

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/poiesic/tandamark/vecstore"
)

// MockIndex is an in-memory test double for vecstore.Index.
// It allows custom behavior injection via function fields.
type MockIndex struct {
	// UpsertFunc is called by Upsert if set.
	UpsertFunc func(ctx context.Context, vectors []vecstore.Vector) error

	// QueryFunc is called by Query if set.
	QueryFunc func(ctx context.Context, req *vecstore.QueryRequest) ([]vecstore.Match, error)

	// DeleteByIDFunc is called by DeleteByID if set.
	DeleteByIDFunc func(ctx context.Context, ids []string) error

	// DescribeStatsFunc is called by DescribeStats if set.
	DescribeStatsFunc func(ctx context.Context) (*vecstore.IndexStats, error)

	mu      sync.Mutex
	vectors map[string]vecstore.Vector

	upsertCalls int
	queryCalls  int
	deleteCalls int
}

// NewMockIndex creates an empty in-memory index.
func NewMockIndex() *MockIndex {
	return &MockIndex{vectors: make(map[string]vecstore.Vector)}
}

// Upsert stores the vectors, overwriting existing IDs.
func (m *MockIndex) Upsert(ctx context.Context, vectors []vecstore.Vector) error {
	m.mu.Lock()
	m.upsertCalls++
	m.mu.Unlock()

	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, vectors)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range vectors {
		m.vectors[v.ID] = v
	}
	return nil
}

// Query returns stored vectors matching the filter, ranked by cosine
// similarity to the request vector.
func (m *MockIndex) Query(ctx context.Context, req *vecstore.QueryRequest) ([]vecstore.Match, error) {
	m.mu.Lock()
	m.queryCalls++
	m.mu.Unlock()

	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matches := make([]vecstore.Match, 0)
	for _, v := range m.vectors {
		if !matchesFilter(v.Metadata, req.Filter) {
			continue
		}
		matches = append(matches, vecstore.Match{
			ID:       v.ID,
			Score:    cosineSimilarity(req.Vector, v.Values),
			Metadata: v.Metadata,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if req.TopK > 0 && len(matches) > req.TopK {
		matches = matches[:req.TopK]
	}
	return matches, nil
}

// DeleteByID removes the given IDs, ignoring unknown ones.
func (m *MockIndex) DeleteByID(ctx context.Context, ids []string) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()

	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, ids)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.vectors, id)
	}
	return nil
}

// DescribeStats reports the number of stored vectors.
func (m *MockIndex) DescribeStats(ctx context.Context) (*vecstore.IndexStats, error) {
	if m.DescribeStatsFunc != nil {
		return m.DescribeStatsFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dimension := 0
	for _, v := range m.vectors {
		dimension = len(v.Values)
		break
	}
	return &vecstore.IndexStats{
		TotalVectorCount: int64(len(m.vectors)),
		Dimension:        dimension,
	}, nil
}

// Len returns the number of stored vectors.
func (m *MockIndex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vectors)
}

// Stored returns the stored vector for id, if present.
func (m *MockIndex) Stored(id string) (vecstore.Vector, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vectors[id]
	return v, ok
}

// UpsertCalls returns how many times Upsert was invoked.
func (m *MockIndex) UpsertCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertCalls
}

// QueryCalls returns how many times Query was invoked.
func (m *MockIndex) QueryCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryCalls
}

func matchesFilter(metadata, filter map[string]any) bool {
	for key, want := range filter {
		if metadata[key] != want {
			return false
		}
	}
	return true
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
