package vecstore

import (
	"time"

	"github.com/poiesic/tandamark/core"
)

// Metadata keys stored with every trademark vector.
const (
	metaTrademarkID    = "trademarkId"
	metaName           = "namaMerek"
	metaApplication    = "nomorPermohonan"
	metaClass          = "kelasBarangJasa"
	metaApplicant      = "namaPemohon"
	metaDescription    = "uraianBarangJasa"
	metaDocumentID     = "documentId"
	metaType           = "type"
	metaSourceDocument = "sourceDocument"
	metaUploadDate     = "uploadDate"
	metaSearchText     = "searchText"
	metaStatus         = "status"

	// RecordType tags individual trademark vectors so queries can
	// filter out anything else sharing the index.
	RecordType = "individual_trademark"
)

// TrademarkMetadata flattens a trademark record into the metadata map
// stored alongside its vector.
func TrademarkMetadata(record *core.Trademark) map[string]any {
	metadata := map[string]any{
		metaTrademarkID:    record.Id,
		metaName:           record.Name,
		metaApplication:    record.ApplicationNumber,
		metaClass:          record.Class,
		metaApplicant:      record.Applicant,
		metaDescription:    record.Description,
		metaDocumentID:     record.DocumentId,
		metaType:           RecordType,
		metaSourceDocument: record.SourceType,
		metaUploadDate:     record.UploadedAt.Format(time.RFC3339),
		metaSearchText:     record.SearchText(),
	}
	// Gazette records carry no registration status; only records that came
	// in with one keep it.
	if record.Status != "" {
		metadata[metaStatus] = record.Status
	}
	return metadata
}

// TrademarkFromMetadata rebuilds a trademark record from query-result
// metadata. Missing or mistyped fields come back zero-valued rather than
// failing, since the scorer only needs the text fields to work.
func TrademarkFromMetadata(id string, metadata map[string]any) *core.Trademark {
	record := &core.Trademark{
		Id:                metaString(metadata, metaTrademarkID),
		Name:              metaString(metadata, metaName),
		ApplicationNumber: metaString(metadata, metaApplication),
		Class:             metaString(metadata, metaClass),
		Applicant:         metaString(metadata, metaApplicant),
		Description:       metaString(metadata, metaDescription),
		DocumentId:        metaString(metadata, metaDocumentID),
		SourceType:        metaString(metadata, metaSourceDocument),
		Status:            metaString(metadata, metaStatus),
	}
	if record.Id == "" {
		record.Id = id
	}
	if raw := metaString(metadata, metaUploadDate); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			record.UploadedAt = ts
		}
	}
	return record
}

func metaString(metadata map[string]any, key string) string {
	if v, ok := metadata[key].(string); ok {
		return v
	}
	return ""
}
