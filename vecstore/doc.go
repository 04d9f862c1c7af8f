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

// Package vecstore defines the vector store abstraction and the resilient
// client that moves trademark records in and out of it.
//
// The Index interface covers the raw store operations (upsert, query,
// delete, stats). Backends live in subpackages: vecstore/pinecone talks to
// a Pinecone serverless index, vecstore/mock is an in-memory double for
// tests.
//
// Client layers the durability policy on top of any Index: fixed-size
// upsert batches, exponential-backoff retries per batch, pacing delays
// between batches, and partial-success accounting so one poisoned batch
// does not sink an entire gazette ingest.
package vecstore
