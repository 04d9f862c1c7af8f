package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/tandamark/core"
	"github.com/poiesic/tandamark/storage"
)

func newLedger(t *testing.T) storage.DocumentLedger {
	t.Helper()
	ledger, err := NewMemoryLedger()
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func docRecord(id string, uploaded time.Time) *core.DocumentRecord {
	return &core.DocumentRecord{
		DocumentId:  id,
		Filename:    id + ".pdf",
		RecordCount: 10,
		Processed:   10,
		UploadedAt:  uploaded,
	}
}

func TestLedger_PutAndGet(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	record := docRecord("djki-DID2024001", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, ledger.PutDocument(ctx, record))

	got, err := ledger.GetDocument(ctx, "djki-DID2024001")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestLedger_GetMissing(t *testing.T) {
	ledger := newLedger(t)
	_, err := ledger.GetDocument(context.Background(), "djki-UNKNOWN")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLedger_PutEmptyID(t *testing.T) {
	ledger := newLedger(t)
	err := ledger.PutDocument(context.Background(), &core.DocumentRecord{})
	assert.ErrorIs(t, err, storage.ErrEmptyDocumentID)
}

func TestLedger_PutReplacesExisting(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	first := docRecord("djki-DID2024001", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, ledger.PutDocument(ctx, first))

	second := docRecord("djki-DID2024001", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	second.RecordCount = 20
	require.NoError(t, ledger.PutDocument(ctx, second))

	got, err := ledger.GetDocument(ctx, "djki-DID2024001")
	require.NoError(t, err)
	assert.Equal(t, 20, got.RecordCount)

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLedger_ListOrderedByUploadDesc(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ledger.PutDocument(ctx, docRecord("djki-A", base)))
	require.NoError(t, ledger.PutDocument(ctx, docRecord("djki-C", base.Add(2*time.Hour))))
	require.NoError(t, ledger.PutDocument(ctx, docRecord("djki-B", base.Add(time.Hour))))

	records, err := ledger.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "djki-C", records[0].DocumentId)
	assert.Equal(t, "djki-B", records[1].DocumentId)
	assert.Equal(t, "djki-A", records[2].DocumentId)
}

func TestLedger_Delete(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	record := docRecord("djki-DID2024001", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, ledger.PutDocument(ctx, record))
	require.NoError(t, ledger.DeleteDocument(ctx, "djki-DID2024001"))

	_, err := ledger.GetDocument(ctx, "djki-DID2024001")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestLedger_DeleteMissing(t *testing.T) {
	ledger := newLedger(t)
	err := ledger.DeleteDocument(context.Background(), "djki-UNKNOWN")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLedger_Count(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"djki-A", "djki-B"} {
		require.NoError(t, ledger.PutDocument(ctx, docRecord(id, base)))
	}

	count, err = ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
