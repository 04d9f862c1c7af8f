// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tandamark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/tandamark/ai"
	"github.com/poiesic/tandamark/core"
	"github.com/poiesic/tandamark/extract"
	"github.com/poiesic/tandamark/search"
	"github.com/poiesic/tandamark/storage"
	"github.com/poiesic/tandamark/vecstore"
)

// VectorStore is the store surface the service needs.
// *vecstore.Client satisfies this.
type VectorStore interface {
	UpsertTrademarks(ctx context.Context, records []*core.Trademark, vectors [][]float32) (*vecstore.UpsertResult, error)
	QuerySimilar(ctx context.Context, vector []float32, topK int) ([]vecstore.ScoredTrademark, error)
	DeleteDocument(ctx context.Context, documentID string) (int, error)
	Stats(ctx context.Context) *vecstore.IndexStats
}

// ConfigStats is the configuration section of a system stats report.
type ConfigStats struct {
	EmbeddingModel      string  `json:"embedding_model"`
	EmbeddingDimension  int     `json:"embedding_dimension"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	TopK                int     `json:"default_top_k"`
}

// SystemStats reports the state of the whole system: the vector index,
// the effective configuration, and the document ledger.
type SystemStats struct {
	Index     *vecstore.IndexStats `json:"pinecone"`
	Config    ConfigStats          `json:"config"`
	Documents int                  `json:"documents"`
}

// Service runs the full trademark pipeline.
type Service struct {
	extractor *extract.Extractor
	embedder  ai.Embedder
	store     VectorStore
	ledger    storage.DocumentLedger
	searcher  *search.Searcher
	logger    *slog.Logger

	model     string
	dimension int
	threshold float64
	topK      int

	now func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithSearchDefaults sets the similarity threshold and recall size used
// by Search.
func WithSearchDefaults(threshold float64, topK int) ServiceOption {
	return func(s *Service) {
		if threshold > 0 {
			s.threshold = threshold
		}
		if topK > 0 {
			s.topK = topK
		}
	}
}

// WithModelInfo records the embedding model and dimension for stats
// reporting.
func WithModelInfo(model string, dimension int) ServiceOption {
	return func(s *Service) {
		s.model = model
		s.dimension = dimension
	}
}

// WithServiceLogger sets the service logger.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService wires the pipeline components into a service.
func NewService(extractor *extract.Extractor, embedder ai.Embedder, store VectorStore, ledger storage.DocumentLedger, opts ...ServiceOption) *Service {
	service := &Service{
		extractor: extractor,
		embedder:  embedder,
		store:     store,
		ledger:    ledger,
		logger:    slog.Default().With("component", "tandamark"),
		model:     "text-embedding-3-small",
		dimension: 1536,
		threshold: search.DefaultThreshold,
		topK:      search.DefaultTopK,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}

	service.searcher = search.NewSearcher(embedder, store,
		search.WithThreshold(service.threshold),
		search.WithTopK(service.topK),
		search.WithLogger(service.logger.With("component", "searcher")),
	)
	return service
}

// IngestDocument extracts trademark records from document text, embeds
// them and writes them to the vector store, then records the document in
// the ledger. The filename is kept for the ledger only.
func (s *Service) IngestDocument(ctx context.Context, text, filename string) (*core.IngestResult, error) {
	records, err := s.extractor.Extract(text)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNoRecordsFound
	}

	uploadedAt := s.now().UTC()
	for _, record := range records {
		record.UploadedAt = uploadedAt
		if err := core.ValidateTrademark(record); err != nil {
			return nil, err
		}
	}

	s.logger.Info("ingesting document",
		"filename", filename, "documentId", records[0].DocumentId, "records", len(records))

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.SearchText()
	}

	vectors, err := s.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}

	upsert, err := s.store.UpsertTrademarks(ctx, records, vectors)
	if err != nil {
		return nil, fmt.Errorf("vector store upsert failed: %w", err)
	}

	result := &core.IngestResult{
		DocumentId:  records[0].DocumentId,
		RecordCount: len(records),
		Processed:   upsert.Processed,
		Failed:      upsert.Failed,
	}

	// The ledger is bookkeeping; a write failure must not lose an
	// ingest that already reached the store.
	if s.ledger != nil {
		err := s.ledger.PutDocument(ctx, &core.DocumentRecord{
			DocumentId:  result.DocumentId,
			Filename:    filename,
			RecordCount: result.RecordCount,
			Processed:   result.Processed,
			Failed:      result.Failed,
			UploadedAt:  uploadedAt,
		})
		if err != nil {
			s.logger.Warn("failed to record document in ledger",
				"documentId", result.DocumentId, "err", err)
		}
	}

	s.logger.Info("document ingested",
		"documentId", result.DocumentId, "processed", result.Processed, "failed", result.Failed)
	return result, nil
}

// Search returns a similarity report for the query name. It never fails;
// see search.Searcher.
func (s *Service) Search(ctx context.Context, query string) *core.SimilarityReport {
	return s.searcher.Search(ctx, query)
}

// DeleteDocument removes a document's vectors and its ledger entry.
// Returns the number of vectors deleted.
func (s *Service) DeleteDocument(ctx context.Context, documentID string) (int, error) {
	deleted, err := s.store.DeleteDocument(ctx, documentID)
	if err != nil {
		return 0, err
	}

	if s.ledger != nil {
		if err := s.ledger.DeleteDocument(ctx, documentID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to remove ledger entry",
				"documentId", documentID, "err", err)
		}
	}

	return deleted, nil
}

// Documents lists the ingested documents, most recent first.
func (s *Service) Documents(ctx context.Context) ([]*core.DocumentRecord, error) {
	if s.ledger == nil {
		return nil, nil
	}
	return s.ledger.ListDocuments(ctx)
}

// Stats reports index, configuration and ledger statistics. Index
// failures degrade to zeros inside the store client.
func (s *Service) Stats(ctx context.Context) *SystemStats {
	stats := &SystemStats{
		Index: s.store.Stats(ctx),
		Config: ConfigStats{
			EmbeddingModel:      s.model,
			EmbeddingDimension:  s.dimension,
			SimilarityThreshold: s.threshold,
			TopK:                s.topK,
		},
	}

	if s.ledger != nil {
		count, err := s.ledger.Count(ctx)
		if err != nil {
			s.logger.Warn("failed to count ledger documents", "err", err)
		} else {
			stats.Documents = count
		}
	}
	return stats
}

// Close releases the document ledger.
func (s *Service) Close() error {
	if s.ledger == nil {
		return nil
	}
	return s.ledger.Close()
}
