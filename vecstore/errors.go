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

import "errors"

var (
	// ErrCountMismatch indicates the number of records and the number of
	// vectors passed to an upsert do not line up.
	ErrCountMismatch = errors.New("record count does not match vector count")

	// ErrInvalidMaxAttempts indicates a retry was requested with a
	// non-positive attempt budget.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")

	// ErrEmptyVector indicates a query was attempted with an empty
	// embedding.
	ErrEmptyVector = errors.New("query vector is empty")

	// ErrNilIndex indicates a client was constructed without a backing
	// index.
	ErrNilIndex = errors.New("index must not be nil")
)
