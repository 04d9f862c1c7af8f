package storage

import (
	"encoding/json"
	"fmt"

	"github.com/poiesic/tandamark/core"
)

// MarshalDocumentRecord serializes a ledger entry for storage.
func MarshalDocumentRecord(record *core.DocumentRecord) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalDocumentRecord deserializes a stored ledger entry.
func UnmarshalDocumentRecord(data []byte) (*core.DocumentRecord, error) {
	var record core.DocumentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
