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

// Package ai provides the embedding abstraction used by the ingestion and
// search paths.
//
// The package defines the Embedder interface; implementations live in
// sub-packages:
//
//   - ai/openai: production implementation against OpenAI-compatible
//     embedding APIs, with adaptive request batching
//   - ai/mock: deterministic test double with no external dependencies
//
// Embedding failures are not retried at this layer. A failed batch fails
// the whole call and the error propagates to the caller; retry policy for
// writes belongs to the vector store client.
package ai
