package core

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent derives a short deterministic identifier from text content
// using BLAKE2b hashing. Identical content always produces the same
// identifier, so re-ingesting the same document overwrites its vectors
// instead of duplicating them. The prefix tags the extraction path that
// produced the document (e.g. "doc", "table", "minimal").
func IDFromContent(prefix, text string) string {
	h, _ := blake2b.New(4, nil) // 4 bytes = 8 hex chars
	h.Write([]byte(text))
	return prefix + "-" + hex.EncodeToString(h.Sum(nil))
}

// SourceTypePDF tags records extracted from uploaded PDF documents.
const SourceTypePDF = "pdf"

// ApplicantUnknown is the sentinel applicant name used when a gazette row
// has no joined detail section.
const ApplicantUnknown = "Tidak Diketahui"

// Trademark represents a single trademark application extracted from a
// gazette document. Records are immutable after extraction except for
// UploadedAt, which is stamped when the record is created.
type Trademark struct {
	Id                string    // Unique within an extraction run: <format>-<nomor>-<kelas>-<ordinal>
	Name              string    // Nama merek
	ApplicationNumber string    // Nomor permohonan
	Class             string    // Kelas barang/jasa
	Applicant         string    // Nama pemohon
	Description       string    // Uraian barang/jasa
	DocumentId        string    // Owning document identifier
	SourceType        string    // Source document type (e.g. "pdf")
	Status            string    // Registration status; empty for gazette records
	UploadedAt        time.Time // When the record was created
}

// SearchText builds the text representation that is embedded for similarity
// search. One comprehensive string per trademark, with labeled segments so
// the mark name, applicant, goods description and class all contribute to
// the vector.
func (t *Trademark) SearchText() string {
	// Strip the generic "Kelas N:" prefix from fallback descriptions so the
	// class code does not appear twice.
	description := t.Description
	if strings.HasPrefix(description, "Kelas ") {
		if idx := strings.Index(description, ":"); idx >= 0 {
			description = strings.TrimSpace(description[idx+1:])
		}
	}

	parts := []string{
		"Nama Merek: " + t.Name,
		"Pemohon: " + t.Applicant,
		"Barang/Jasa: " + description,
		"Kelas: " + t.Class,
	}
	return strings.Join(parts, " | ")
}

// SimilarityResult is one scored candidate in a similarity report.
// All five scores lie in [0.0, 1.0]. SemanticSimilarity currently mirrors
// TextSimilarity and ConfidenceScore mirrors OverallSimilarity; both
// duplications are part of the response contract.
type SimilarityResult struct {
	Name               string  `json:"trademark_name"`
	ApplicationNumber  string  `json:"application_number"`
	Owner              string  `json:"owner_name"`
	Classification     string  `json:"classification"`
	Description        string  `json:"description"`
	Status             string  `json:"status"`
	OverallSimilarity  float64 `json:"overall_similarity"`
	TextSimilarity     float64 `json:"text_similarity"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	PhoneticSimilarity float64 `json:"phonetic_similarity"`
	ConfidenceScore    float64 `json:"confidence_score"`
}

// SimilarityReport is the full response to a similarity search.
// TotalCompared counts raw vector-store candidates before threshold
// filtering; Found counts the results that survived it.
type SimilarityReport struct {
	TargetTrademark string             `json:"targetTrademark"`
	TotalCompared   int                `json:"totalCompared"`
	Found           int                `json:"similarTrademarksFound"`
	Results         []SimilarityResult `json:"results"`
}

// EmptyReport returns a valid zero-result report for the given query.
// Used both for blank queries and for internal search failures, which
// degrade to an empty response rather than erroring.
func EmptyReport(target string) *SimilarityReport {
	return &SimilarityReport{
		TargetTrademark: target,
		Results:         []SimilarityResult{},
	}
}

// DocumentRecord is the ledger entry kept for every ingested document.
// It tracks what went into the vector store so documents can be listed
// and deleted later without querying the store.
type DocumentRecord struct {
	DocumentId  string    `json:"documentId"`
	Filename    string    `json:"filename"`
	RecordCount int       `json:"recordCount"`
	Processed   int       `json:"processed"`
	Failed      int       `json:"failed"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// IngestResult summarizes a completed document ingestion.
type IngestResult struct {
	DocumentId  string `json:"documentId"`
	RecordCount int    `json:"recordCount"`
	Processed   int    `json:"processed"`
	Failed      int    `json:"failed"`
}
