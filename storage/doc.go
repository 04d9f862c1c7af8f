// Package storage defines the document ledger abstraction.
//
// The ledger records one entry per ingested document so the system can
// list what it holds and delete documents later without scanning the
// vector store. The BadgerDB implementation lives in storage/badger.
package storage
