package badger

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Key prefixes for different data types
const (
	documentRecordPrefix = "docrec"
	documentDatePrefix   = "docrecd"
)

// makeDocumentKey generates a key for a document ledger entry by ID.
func makeDocumentKey(documentID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", documentRecordPrefix, documentID))
}

// makeDocumentDateKey generates a composite key for the upload date index.
// Format: prefix:timestamp:documentID
func makeDocumentDateKey(timestamp time.Time, documentID string) []byte {
	prefix := documentDatePrefix + ":"
	buf := make([]byte, len(prefix)+8+len(documentID))
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	copy(buf[offset:], documentID)
	return buf
}
