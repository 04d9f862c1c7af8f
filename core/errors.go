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

package core

import "errors"

// Domain validation errors
var (
	// ErrNoExtractableText indicates a document contained no extractable text.
	// This is fatal: callers must abort the ingestion.
	ErrNoExtractableText = errors.New("no text could be extracted from document")

	// ErrNoRecordsFound indicates extraction produced zero trademark records
	// from a non-empty document.
	ErrNoRecordsFound = errors.New("no trademark records found in document")

	// ErrInvalidTrademark indicates a Trademark failed validation.
	ErrInvalidTrademark = errors.New("invalid trademark record")

	// ErrEmptyId indicates the Id field is empty.
	ErrEmptyId = errors.New("trademark id cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("trademark name cannot be empty")

	// ErrEmptyDocumentId indicates the DocumentId field is empty.
	ErrEmptyDocumentId = errors.New("document id cannot be empty")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")
)
