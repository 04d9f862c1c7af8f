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

// Package extract parses raw gazette document text into individual trademark
// records.
//
// Extraction is a pure function of the input text. A document is first
// classified into one of four formats, then handed to the extraction
// strategy for that format:
//
//   - FormatGazetteTable: the DJKI tabular gazette layout, one row per
//     trademark application. The only format that yields multiple records.
//   - FormatLabeledFields: "Nama Merek: X" style labeled documents.
//   - FormatGenericTable: a loosely tabular row, best-effort single record.
//   - FormatMinimal: no recognizable structure; a mark name is guessed from
//     capitalized word sequences. Always yields exactly one record.
//
// The trial order is fixed: gazette, labels, generic table, minimal. A
// document that classifies as gazette but matches zero rows returns an empty
// record list rather than falling through; callers treat that as a
// "no records found" condition.
package extract
