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

package badger

import (
	"context"
	"errors"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/tandamark/core"
	"github.com/poiesic/tandamark/storage"
)

// Ledger implements storage.DocumentLedger for BadgerDB.
type Ledger struct {
	backend *Backend
}

var _ storage.DocumentLedger = (*Ledger)(nil)

// NewLedger creates a document ledger over the backend.
func NewLedger(backend *Backend) *Ledger {
	return &Ledger{backend: backend}
}

// Close closes the underlying backend.
func (l *Ledger) Close() error {
	return l.backend.Close()
}

// PutDocument stores or replaces the ledger entry for a document.
func (l *Ledger) PutDocument(ctx context.Context, record *core.DocumentRecord) error {
	if record == nil || record.DocumentId == "" {
		return storage.ErrEmptyDocumentID
	}

	return l.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDocumentKey(record.DocumentId)

		// Drop the old date index entry when re-ingesting.
		old, err := l.readDocument(tx, key)
		if err != nil {
			return err
		}
		if old != nil && !old.UploadedAt.Equal(record.UploadedAt) {
			if err := tx.Delete(makeDocumentDateKey(old.UploadedAt, old.DocumentId)); err != nil {
				return err
			}
		}

		value, err := storage.MarshalDocumentRecord(record)
		if err != nil {
			return err
		}
		if err := tx.Set(key, value); err != nil {
			return err
		}

		dateKey := makeDocumentDateKey(record.UploadedAt, record.DocumentId)
		if err := tx.Set(dateKey, []byte(record.DocumentId)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a ledger entry by document ID.
func (l *Ledger) GetDocument(ctx context.Context, documentID string) (*core.DocumentRecord, error) {
	if documentID == "" {
		return nil, storage.ErrEmptyDocumentID
	}

	var record *core.DocumentRecord
	err := l.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = l.readDocument(tx, makeDocumentKey(documentID))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}
	return record, nil
}

// ListDocuments returns all ledger entries, most recently uploaded first.
func (l *Ledger) ListDocuments(ctx context.Context) ([]*core.DocumentRecord, error) {
	var records []*core.DocumentRecord

	err := l.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			var record *core.DocumentRecord
			err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalDocumentRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(records, func(a, b *core.DocumentRecord) int {
		if a.UploadedAt.After(b.UploadedAt) {
			return -1
		}
		if a.UploadedAt.Before(b.UploadedAt) {
			return 1
		}
		return 0
	})
	return records, nil
}

// DeleteDocument removes the ledger entry and its date index entry.
func (l *Ledger) DeleteDocument(ctx context.Context, documentID string) error {
	if documentID == "" {
		return storage.ErrEmptyDocumentID
	}

	return l.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDocumentKey(documentID)
		record, err := l.readDocument(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		if err := tx.Delete(makeDocumentDateKey(record.UploadedAt, documentID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of recorded documents.
func (l *Ledger) Count(ctx context.Context) (int, error) {
	count := 0
	err := l.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readDocument reads a ledger entry inside a transaction.
// Returns nil without error when the key does not exist.
func (l *Ledger) readDocument(tx *badger.Txn, key []byte) (*core.DocumentRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.DocumentRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalDocumentRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
