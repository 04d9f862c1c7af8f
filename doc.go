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

// Package tandamark ties the trademark pipeline together: extraction of
// trademark records from gazette text, embedding generation, vector
// storage, the document ledger, and similarity search.
//
// The Service type is the main entry point. Construct it from an
// extractor, an embedder, a vector store client and a document ledger,
// then ingest documents and search for similar marks:
//
//	service := tandamark.NewService(extractor, embedder, store, ledger)
//	result, err := service.IngestDocument(ctx, gazetteText, "gazette-42.pdf")
//	report := service.Search(ctx, "Kopi Nusantara")
package tandamark
