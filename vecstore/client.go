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

package vecstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/tandamark/core"
)

const (
	defaultBatchSize   = 50
	defaultMaxAttempts = 3
	defaultBaseDelay   = 2 * time.Second
	defaultMaxDelay    = 10 * time.Second
	defaultBatchPause  = 500 * time.Millisecond
	defaultDimension   = 1536

	// deleteQueryTopK bounds how many vectors a single document delete
	// can sweep up.
	deleteQueryTopK = 10000
)

// UpsertResult reports how an upsert fared across all batches.
type UpsertResult struct {
	Processed int      `json:"total_processed"`
	Failed    int      `json:"failed_count"`
	FailedIDs []string `json:"failed_ids"`
}

// ScoredTrademark pairs a stored trademark record with its vector
// similarity score from the index.
type ScoredTrademark struct {
	Record *core.Trademark
	Score  float64
}

// Client wraps an Index with the durability policy used for gazette
// ingests: fixed-size batches, per-batch retries with exponential
// backoff, pacing between batches, and partial-failure accounting.
type Client struct {
	index       Index
	logger      *slog.Logger
	batchSize   int
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	batchPause  time.Duration
	dimension   int
}

// Option configures a Client.
type Option func(*Client)

// WithBatchSize sets how many vectors go into a single upsert request.
func WithBatchSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithMaxAttempts sets the per-batch retry budget.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithBackoff sets the base and maximum retry delays.
func WithBackoff(base, max time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = base
		c.maxDelay = max
	}
}

// WithBatchPause sets the pacing delay between consecutive batches.
func WithBatchPause(d time.Duration) Option {
	return func(c *Client) {
		c.batchPause = d
	}
}

// WithDimension sets the embedding dimension, used to build the
// zero vector for document deletion sweeps.
func WithDimension(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.dimension = n
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a resilient client over the given index.
func NewClient(index Index, opts ...Option) (*Client, error) {
	if index == nil {
		return nil, ErrNilIndex
	}

	client := &Client{
		index:       index,
		logger:      slog.Default().With("component", "vecstore-client"),
		batchSize:   defaultBatchSize,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		maxDelay:    defaultMaxDelay,
		batchPause:  defaultBatchPause,
		dimension:   defaultDimension,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// UpsertTrademarks writes the records and their vectors to the index in
// batches. A batch that exhausts its retries is counted as failed and the
// remaining batches still run, so one poisoned batch does not lose the
// whole ingest. Context cancellation aborts immediately.
func (c *Client) UpsertTrademarks(ctx context.Context, records []*core.Trademark, vectors [][]float32) (*UpsertResult, error) {
	if len(records) != len(vectors) {
		return nil, ErrCountMismatch
	}

	result := &UpsertResult{FailedIDs: []string{}}
	if len(records) == 0 {
		return result, nil
	}

	totalBatches := (len(records) + c.batchSize - 1) / c.batchSize
	c.logger.Info("starting trademark upsert",
		"count", len(records), "batchSize", c.batchSize, "batches", totalBatches)

	for start := 0; start < len(records); start += c.batchSize {
		end := min(start+c.batchSize, len(records))
		batchNum := start/c.batchSize + 1

		batch := make([]Vector, 0, end-start)
		for i := start; i < end; i++ {
			batch = append(batch, Vector{
				ID:       records[i].Id,
				Values:   vectors[i],
				Metadata: TrademarkMetadata(records[i]),
			})
		}

		err := RetryWithBackoff(ctx, func() error {
			return c.index.Upsert(ctx, batch)
		}, c.maxAttempts, c.baseDelay, c.maxDelay)

		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			c.logger.Error("batch failed after retries",
				"batch", batchNum, "totalBatches", totalBatches, "size", len(batch), "err", err)
			result.Failed += len(batch)
			for _, v := range batch {
				result.FailedIDs = append(result.FailedIDs, v.ID)
			}
			continue
		}

		result.Processed += len(batch)
		c.logger.Debug("batch upserted",
			"batch", batchNum, "totalBatches", totalBatches, "size", len(batch))

		if batchNum < totalBatches && c.batchPause > 0 {
			timer := time.NewTimer(c.batchPause)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}

	c.logger.Info("trademark upsert completed",
		"processed", result.Processed, "failed", result.Failed)
	return result, nil
}

// QuerySimilar returns up to topK stored trademarks nearest to the query
// vector, restricted to individual trademark records.
func (c *Client) QuerySimilar(ctx context.Context, vector []float32, topK int) ([]ScoredTrademark, error) {
	if len(vector) == 0 {
		return nil, ErrEmptyVector
	}

	matches, err := c.index.Query(ctx, &QueryRequest{
		Vector: vector,
		TopK:   topK,
		Filter: map[string]any{metaType: RecordType},
	})
	if err != nil {
		return nil, err
	}

	results := make([]ScoredTrademark, 0, len(matches))
	for _, match := range matches {
		results = append(results, ScoredTrademark{
			Record: TrademarkFromMetadata(match.ID, match.Metadata),
			Score:  float64(match.Score),
		})
	}

	c.logger.Debug("similarity query completed", "matches", len(results))
	return results, nil
}

// DeleteDocument removes every vector belonging to the document. Vectors
// are found by a zero-vector metadata query, so documents with more than
// deleteQueryTopK records need repeated calls. Returns the number of
// vectors deleted.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) (int, error) {
	matches, err := c.index.Query(ctx, &QueryRequest{
		Vector: make([]float32, c.dimension),
		TopK:   deleteQueryTopK,
		Filter: map[string]any{metaDocumentID: documentID},
	})
	if err != nil {
		return 0, err
	}

	if len(matches) == 0 {
		return 0, nil
	}

	ids := make([]string, len(matches))
	for i, match := range matches {
		ids[i] = match.ID
	}

	if err := c.index.DeleteByID(ctx, ids); err != nil {
		return 0, err
	}

	c.logger.Info("deleted document vectors", "documentId", documentID, "count", len(ids))
	return len(ids), nil
}

// Stats reports index statistics. Failures are logged and reported as an
// all-zero snapshot rather than an error, so status endpoints stay up
// when the store is not reachable.
func (c *Client) Stats(ctx context.Context) *IndexStats {
	stats, err := c.index.DescribeStats(ctx)
	if err != nil {
		c.logger.Warn("failed to fetch index stats", "err", err)
		return &IndexStats{}
	}
	return stats
}
