package storage

import (
	"context"

	"github.com/poiesic/tandamark/core"
)

// DocumentLedger tracks ingested documents.
// Implementations must be thread-safe and support concurrent access.
type DocumentLedger interface {
	// PutDocument stores or replaces the ledger entry for a document.
	PutDocument(ctx context.Context, record *core.DocumentRecord) error

	// GetDocument retrieves a ledger entry by document ID.
	// Returns ErrNotFound if the document is not recorded.
	GetDocument(ctx context.Context, documentID string) (*core.DocumentRecord, error)

	// ListDocuments returns all ledger entries ordered by upload time,
	// most recent first.
	ListDocuments(ctx context.Context) ([]*core.DocumentRecord, error)

	// DeleteDocument removes the ledger entry for a document.
	// Returns ErrNotFound if the document is not recorded.
	DeleteDocument(ctx context.Context, documentID string) error

	// Count returns the number of recorded documents.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
