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

package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/tandamark/ai"
	"github.com/poiesic/tandamark/core"
	"github.com/poiesic/tandamark/vecstore"
)

// CandidateSource recalls stored trademarks near a query vector.
// *vecstore.Client satisfies this.
type CandidateSource interface {
	QuerySimilar(ctx context.Context, vector []float32, topK int) ([]vecstore.ScoredTrademark, error)
}

// Searcher runs the full similarity search flow: embed the query, recall
// candidates, score and filter them into a report.
type Searcher struct {
	embedder  ai.Embedder
	source    CandidateSource
	scorer    *Scorer
	logger    *slog.Logger
	threshold float64
	topK      int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithThreshold sets the minimum vector score for candidates.
func WithThreshold(threshold float64) Option {
	return func(s *Searcher) {
		if threshold > 0 {
			s.threshold = threshold
		}
	}
}

// WithTopK sets the candidate recall size.
func WithTopK(topK int) Option {
	return func(s *Searcher) {
		if topK > 0 {
			s.topK = topK
		}
	}
}

// WithLogger sets the searcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// NewSearcher creates a searcher over the given embedder and candidate
// source.
func NewSearcher(embedder ai.Embedder, source CandidateSource, opts ...Option) *Searcher {
	searcher := &Searcher{
		embedder:  embedder,
		source:    source,
		scorer:    NewScorer(),
		logger:    slog.Default().With("component", "searcher"),
		threshold: DefaultThreshold,
		topK:      DefaultTopK,
	}
	for _, opt := range opts {
		opt(searcher)
	}
	return searcher
}

// Search returns a similarity report for the query name. It never fails:
// blank queries and infrastructure errors both degrade to an empty,
// well-formed report.
func (s *Searcher) Search(ctx context.Context, query string) *core.SimilarityReport {
	query = strings.TrimSpace(query)
	if query == "" {
		return core.EmptyReport("")
	}

	s.logger.Info("searching for similar trademarks",
		"query", query, "threshold", s.threshold, "topK", s.topK)

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("query embedding failed", "query", query, "err", err)
		return core.EmptyReport(query)
	}

	candidates, err := s.source.QuerySimilar(ctx, vector, s.topK)
	if err != nil {
		s.logger.Error("candidate recall failed", "query", query, "err", err)
		return core.EmptyReport(query)
	}

	report := s.scorer.BuildReport(query, candidates, s.threshold)
	s.logger.Info("search completed",
		"query", query, "compared", report.TotalCompared, "found", report.Found)
	return report
}
