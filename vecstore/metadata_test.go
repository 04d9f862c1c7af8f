package vecstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/tandamark/core"
)

func sampleTrademark() *core.Trademark {
	return &core.Trademark{
		Id:                "djki-DID2024001-9-0",
		Name:              "KOPI NUSANTARA",
		ApplicationNumber: "DID2024001",
		Class:             "9",
		Applicant:         "PT Maju Jaya",
		Description:       "Perangkat lunak komputer",
		DocumentId:        "djki-DID2024001",
		SourceType:        core.SourceTypePDF,
		UploadedAt:        time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestTrademarkMetadata(t *testing.T) {
	metadata := TrademarkMetadata(sampleTrademark())

	assert.Equal(t, "djki-DID2024001-9-0", metadata["trademarkId"])
	assert.Equal(t, "KOPI NUSANTARA", metadata["namaMerek"])
	assert.Equal(t, "DID2024001", metadata["nomorPermohonan"])
	assert.Equal(t, "9", metadata["kelasBarangJasa"])
	assert.Equal(t, "PT Maju Jaya", metadata["namaPemohon"])
	assert.Equal(t, "Perangkat lunak komputer", metadata["uraianBarangJasa"])
	assert.Equal(t, "djki-DID2024001", metadata["documentId"])
	assert.Equal(t, "individual_trademark", metadata["type"])
	assert.Equal(t, "pdf", metadata["sourceDocument"])
	assert.Equal(t, "2024-06-01T10:00:00Z", metadata["uploadDate"])
	assert.Contains(t, metadata["searchText"], "Nama Merek: KOPI NUSANTARA")
}

func TestTrademarkFromMetadata(t *testing.T) {
	original := sampleTrademark()
	rebuilt := TrademarkFromMetadata(original.Id, TrademarkMetadata(original))

	assert.Equal(t, original.Id, rebuilt.Id)
	assert.Equal(t, original.Name, rebuilt.Name)
	assert.Equal(t, original.ApplicationNumber, rebuilt.ApplicationNumber)
	assert.Equal(t, original.Class, rebuilt.Class)
	assert.Equal(t, original.Applicant, rebuilt.Applicant)
	assert.Equal(t, original.Description, rebuilt.Description)
	assert.Equal(t, original.DocumentId, rebuilt.DocumentId)
	assert.Equal(t, original.SourceType, rebuilt.SourceType)
	assert.True(t, original.UploadedAt.Equal(rebuilt.UploadedAt))
}

func TestTrademarkMetadata_Status(t *testing.T) {
	t.Run("omitted when empty", func(t *testing.T) {
		metadata := TrademarkMetadata(sampleTrademark())
		assert.NotContains(t, metadata, "status")
	})

	t.Run("round trips when set", func(t *testing.T) {
		record := sampleTrademark()
		record.Status = "Expired"

		metadata := TrademarkMetadata(record)
		assert.Equal(t, "Expired", metadata["status"])

		rebuilt := TrademarkFromMetadata(record.Id, metadata)
		assert.Equal(t, "Expired", rebuilt.Status)
	})
}

func TestTrademarkFromMetadata_Degraded(t *testing.T) {
	t.Run("missing trademarkId falls back to vector id", func(t *testing.T) {
		record := TrademarkFromMetadata("vec-1", map[string]any{
			"namaMerek": "Acme",
		})
		assert.Equal(t, "vec-1", record.Id)
		assert.Equal(t, "Acme", record.Name)
	})

	t.Run("mistyped fields come back empty", func(t *testing.T) {
		record := TrademarkFromMetadata("vec-1", map[string]any{
			"namaMerek":  42,
			"uploadDate": "not a timestamp",
		})
		require.NotNil(t, record)
		assert.Empty(t, record.Name)
		assert.True(t, record.UploadedAt.IsZero())
	})

	t.Run("nil metadata", func(t *testing.T) {
		record := TrademarkFromMetadata("vec-1", nil)
		require.NotNil(t, record)
		assert.Equal(t, "vec-1", record.Id)
	})
}
