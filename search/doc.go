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

// Package search scores trademark similarity and orchestrates the full
// search flow: embed the query, recall candidates from the vector store,
// then re-score each candidate name with string and phonetic metrics.
//
// The Scorer combines three text metrics (normalized Levenshtein,
// Jaro-Winkler, longest common substring) with a phonetic agreement score
// averaged over Soundex, Metaphone and NYSIIS encodings. The overall score
// weights Jaro-Winkler at 0.7 and the phonetic score at 0.3.
//
// The Searcher never surfaces infrastructure errors to callers: embedding
// or store failures degrade to an empty report so the caller always gets a
// well-formed response.
package search
