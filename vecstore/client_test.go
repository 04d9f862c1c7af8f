package vecstore_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/tandamark/core"
	"github.com/poiesic/tandamark/vecstore"
	"github.com/poiesic/tandamark/vecstore/mock"
)

func newTestClient(t *testing.T, index vecstore.Index, opts ...vecstore.Option) *vecstore.Client {
	t.Helper()
	base := []vecstore.Option{
		vecstore.WithBackoff(time.Millisecond, 5*time.Millisecond),
		vecstore.WithBatchPause(0),
		vecstore.WithDimension(4),
	}
	client, err := vecstore.NewClient(index, append(base, opts...)...)
	require.NoError(t, err)
	return client
}

func makeRecords(n int) ([]*core.Trademark, [][]float32) {
	records := make([]*core.Trademark, n)
	vectors := make([][]float32, n)
	for i := range records {
		records[i] = &core.Trademark{
			Id:                fmt.Sprintf("djki-DID%04d-9-0", i),
			Name:              fmt.Sprintf("Merek %d", i),
			ApplicationNumber: fmt.Sprintf("DID%04d", i),
			Class:             "9",
			Applicant:         "PT Contoh",
			Description:       "Perangkat lunak",
			DocumentId:        fmt.Sprintf("djki-DID%04d", i),
			SourceType:        core.SourceTypePDF,
			UploadedAt:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		vectors[i] = []float32{float32(i), 1, 0, 0}
	}
	return records, vectors
}

func TestNewClient_NilIndex(t *testing.T) {
	_, err := vecstore.NewClient(nil)
	assert.ErrorIs(t, err, vecstore.ErrNilIndex)
}

func TestUpsertTrademarks_CountMismatch(t *testing.T) {
	client := newTestClient(t, mock.NewMockIndex())
	records, vectors := makeRecords(3)

	_, err := client.UpsertTrademarks(context.Background(), records, vectors[:2])
	assert.ErrorIs(t, err, vecstore.ErrCountMismatch)
}

func TestUpsertTrademarks_Empty(t *testing.T) {
	index := mock.NewMockIndex()
	client := newTestClient(t, index)

	result, err := client.UpsertTrademarks(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, index.UpsertCalls())
}

func TestUpsertTrademarks_Batching(t *testing.T) {
	index := mock.NewMockIndex()
	client := newTestClient(t, index, vecstore.WithBatchSize(50))

	records, vectors := makeRecords(120)
	result, err := client.UpsertTrademarks(context.Background(), records, vectors)
	require.NoError(t, err)

	assert.Equal(t, 120, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.FailedIDs)
	assert.Equal(t, 3, index.UpsertCalls(), "120 records in batches of 50")
	assert.Equal(t, 120, index.Len())

	stored, ok := index.Stored("djki-DID0000-9-0")
	require.True(t, ok)
	assert.Equal(t, "Merek 0", stored.Metadata["namaMerek"])
}

func TestUpsertTrademarks_Idempotent(t *testing.T) {
	index := mock.NewMockIndex()
	client := newTestClient(t, index)

	records, vectors := makeRecords(5)
	for i := 0; i < 2; i++ {
		result, err := client.UpsertTrademarks(context.Background(), records, vectors)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Processed)
	}

	assert.Equal(t, 5, index.Len(), "re-upserting overwrites by id instead of duplicating")
	stored, ok := index.Stored("djki-DID0002-9-0")
	require.True(t, ok)
	assert.Equal(t, "Merek 2", stored.Metadata["namaMerek"])
}

func TestUpsertTrademarks_PartialFailure(t *testing.T) {
	index := mock.NewMockIndex()
	// Fail every attempt whose batch contains the poisoned record.
	index.UpsertFunc = func(ctx context.Context, vectors []vecstore.Vector) error {
		for _, v := range vectors {
			if v.ID == "djki-DID0003-9-0" {
				return errors.New("serialization rejected")
			}
		}
		return nil
	}
	client := newTestClient(t, index, vecstore.WithBatchSize(2), vecstore.WithMaxAttempts(2))

	records, vectors := makeRecords(6)
	result, err := client.UpsertTrademarks(context.Background(), records, vectors)
	require.NoError(t, err, "a failed batch is accounted, not fatal")

	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, []string{"djki-DID0002-9-0", "djki-DID0003-9-0"}, result.FailedIDs)
}

func TestUpsertTrademarks_RetriesTransientFailure(t *testing.T) {
	index := mock.NewMockIndex()
	attempts := 0
	index.UpsertFunc = func(ctx context.Context, vectors []vecstore.Vector) error {
		attempts++
		if attempts == 1 {
			return errors.New("transient")
		}
		return nil
	}
	client := newTestClient(t, index)

	records, vectors := makeRecords(3)
	result, err := client.UpsertTrademarks(context.Background(), records, vectors)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, attempts)
}

func TestUpsertTrademarks_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, mock.NewMockIndex())
	records, vectors := makeRecords(3)

	_, err := client.UpsertTrademarks(ctx, records, vectors)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuerySimilar(t *testing.T) {
	index := mock.NewMockIndex()
	client := newTestClient(t, index)

	records, vectors := makeRecords(5)
	_, err := client.UpsertTrademarks(context.Background(), records, vectors)
	require.NoError(t, err)

	results, err := client.QuerySimilar(context.Background(), []float32{4, 1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "djki-DID0004-9-0", results[0].Record.Id)
	assert.Equal(t, "Merek 4", results[0].Record.Name)
	assert.Greater(t, results[0].Score, results[2].Score)
}

func TestQuerySimilar_EmptyVector(t *testing.T) {
	client := newTestClient(t, mock.NewMockIndex())
	_, err := client.QuerySimilar(context.Background(), nil, 10)
	assert.ErrorIs(t, err, vecstore.ErrEmptyVector)
}

func TestQuerySimilar_FiltersOtherRecordTypes(t *testing.T) {
	index := mock.NewMockIndex()
	require.NoError(t, index.Upsert(context.Background(), []vecstore.Vector{
		{
			ID:       "chunk-1",
			Values:   []float32{1, 0, 0, 0},
			Metadata: map[string]any{"type": "trademark_data"},
		},
	}))
	client := newTestClient(t, index)

	records, vectors := makeRecords(2)
	_, err := client.UpsertTrademarks(context.Background(), records, vectors)
	require.NoError(t, err)

	results, err := client.QuerySimilar(context.Background(), []float32{1, 0, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, "chunk-1", r.Record.Id)
	}
}

func TestDeleteDocument(t *testing.T) {
	index := mock.NewMockIndex()
	client := newTestClient(t, index)

	records, vectors := makeRecords(4)
	// Two records share one document.
	records[1].DocumentId = records[0].DocumentId
	_, err := client.UpsertTrademarks(context.Background(), records, vectors)
	require.NoError(t, err)

	deleted, err := client.DeleteDocument(context.Background(), records[0].DocumentId)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, 2, index.Len())
}

func TestDeleteDocument_NoMatches(t *testing.T) {
	client := newTestClient(t, mock.NewMockIndex())
	deleted, err := client.DeleteDocument(context.Background(), "djki-UNKNOWN")
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestStats(t *testing.T) {
	index := mock.NewMockIndex()
	client := newTestClient(t, index)

	records, vectors := makeRecords(3)
	_, err := client.UpsertTrademarks(context.Background(), records, vectors)
	require.NoError(t, err)

	stats := client.Stats(context.Background())
	assert.Equal(t, int64(3), stats.TotalVectorCount)
	assert.Equal(t, 4, stats.Dimension)
}

func TestStats_FailureReturnsZeros(t *testing.T) {
	index := mock.NewMockIndex()
	index.DescribeStatsFunc = func(ctx context.Context) (*vecstore.IndexStats, error) {
		return nil, errors.New("unreachable")
	}
	client := newTestClient(t, index)

	stats := client.Stats(context.Background())
	require.NotNil(t, stats)
	assert.Equal(t, int64(0), stats.TotalVectorCount)
	assert.Equal(t, 0, stats.Dimension)
	assert.Equal(t, float64(0), stats.IndexFullness)
}
