package pinecone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pinecone-io/go-pinecone/v2/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/poiesic/tandamark/vecstore"
)

// Config holds the connection settings for a Pinecone index.
type Config struct {
	// APIKey authenticates against the Pinecone control and data planes.
	APIKey string

	// IndexName is the index to connect to. Used to resolve the data
	// plane host when IndexHost is empty.
	IndexName string

	// IndexHost is the data plane host. When set, the control plane
	// lookup is skipped.
	IndexHost string

	// Namespace scopes all operations. Empty means the default namespace.
	Namespace string
}

// Validate checks that the configuration can establish a connection.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("pinecone api key is required")
	}
	if c.IndexName == "" && c.IndexHost == "" {
		return errors.New("either index name or index host is required")
	}
	return nil
}

// Index implements vecstore.Index backed by a Pinecone serverless index.
type Index struct {
	conn   *pinecone.IndexConnection
	logger *slog.Logger
}

// NewIndex connects to the configured Pinecone index.
//
// Returns vecstore.Index interface to enforce abstraction.
func NewIndex(config *Config) (vecstore.Index, error) {
	return newIndex(config)
}

func newIndex(config *Config) (*Index, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: config.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create pinecone client: %w", err)
	}

	host := config.IndexHost
	if host == "" {
		desc, err := client.DescribeIndex(context.Background(), config.IndexName)
		if err != nil {
			return nil, fmt.Errorf("failed to describe index %q: %w", config.IndexName, err)
		}
		host = desc.Host
	}

	conn, err := client.Index(pinecone.NewIndexConnParams{
		Host:      host,
		Namespace: config.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to index host %q: %w", host, err)
	}

	return &Index{
		conn:   conn,
		logger: slog.Default().With("component", "pinecone-index"),
	}, nil
}

// Upsert writes the vectors in a single request.
func (x *Index) Upsert(ctx context.Context, vectors []vecstore.Vector) error {
	converted := make([]*pinecone.Vector, 0, len(vectors))
	for _, v := range vectors {
		metadata, err := structpb.NewStruct(v.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata for %q: %w", v.ID, err)
		}
		converted = append(converted, &pinecone.Vector{
			Id:       v.ID,
			Values:   v.Values,
			Metadata: metadata,
		})
	}

	count, err := x.conn.UpsertVectors(ctx, converted)
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}

	x.logger.Debug("upserted vectors", "count", count)
	return nil
}

// Query runs a similarity query with metadata returned for each match.
func (x *Index) Query(ctx context.Context, req *vecstore.QueryRequest) ([]vecstore.Match, error) {
	request := &pinecone.QueryByVectorValuesRequest{
		Vector:          req.Vector,
		TopK:            uint32(req.TopK),
		IncludeMetadata: true,
	}

	if len(req.Filter) > 0 {
		filter, err := equalityFilter(req.Filter)
		if err != nil {
			return nil, err
		}
		request.MetadataFilter = filter
	}

	response, err := x.conn.QueryByVectorValues(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	matches := make([]vecstore.Match, 0, len(response.Matches))
	for _, scored := range response.Matches {
		if scored.Vector == nil {
			continue
		}
		match := vecstore.Match{
			ID:    scored.Vector.Id,
			Score: scored.Score,
		}
		if scored.Vector.Metadata != nil {
			match.Metadata = scored.Vector.Metadata.AsMap()
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// DeleteByID removes the vectors with the given IDs.
func (x *Index) DeleteByID(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := x.conn.DeleteVectorsById(ctx, ids); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	x.logger.Debug("deleted vectors", "count", len(ids))
	return nil
}

// DescribeStats reports the index statistics.
func (x *Index) DescribeStats(ctx context.Context) (*vecstore.IndexStats, error) {
	stats, err := x.conn.DescribeIndexStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("describe stats failed: %w", err)
	}
	return &vecstore.IndexStats{
		TotalVectorCount: int64(stats.TotalVectorCount),
		Dimension:        int(stats.Dimension),
		IndexFullness:    float64(stats.IndexFullness),
	}, nil
}

// equalityFilter converts a flat equality map into Pinecone's filter
// expression form, {"field": {"$eq": value}}.
func equalityFilter(filter map[string]any) (*structpb.Struct, error) {
	expr := make(map[string]any, len(filter))
	for key, value := range filter {
		expr[key] = map[string]any{"$eq": value}
	}
	converted, err := structpb.NewStruct(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}
	return converted, nil
}
