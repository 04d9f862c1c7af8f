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

package search

import (
	"math"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/poiesic/tandamark/core"
	"github.com/poiesic/tandamark/vecstore"
)

const (
	textWeight     = 0.7
	phoneticWeight = 0.3

	// DefaultThreshold is the minimum vector score a candidate needs to
	// be scored and included in a report.
	DefaultThreshold = 0.15

	// DefaultTopK is the default candidate recall size.
	DefaultTopK = 10

	// relaxedRecallSize is the raw candidate count below which the
	// threshold is halved, so sparse indexes still produce results.
	relaxedRecallSize = 3

	// statusActive is reported for candidates without a stored
	// registration status, which gazette data never carries.
	statusActive = "Active"
)

// TextScores holds the three text similarity metrics on a 0-100 scale,
// each rounded to one decimal place.
type TextScores struct {
	Levenshtein float64
	JaroWinkler float64
	Substring   float64
}

// Scorer computes similarity scores between trademark names. It is
// stateless and safe for concurrent use.
type Scorer struct{}

// NewScorer creates a similarity scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// TextSimilarity computes the three text metrics between two names.
// Either name being blank after normalization yields all zeros.
func (s *Scorer) TextSimilarity(a, b string) TextScores {
	a = normalize(a)
	b = normalize(b)
	if a == "" || b == "" {
		return TextScores{}
	}

	maxLen := max(len([]rune(a)), len([]rune(b)))
	levenshtein := 1.0 - float64(matchr.Levenshtein(a, b))/float64(maxLen)

	jaroWinkler := matchr.JaroWinkler(a, b, false)

	substring := 1.0
	if !containsEither(a, b) {
		substring = float64(longestCommonSubstring(a, b)) / float64(maxLen)
	}

	return TextScores{
		Levenshtein: round1(levenshtein * 100),
		JaroWinkler: round1(jaroWinkler * 100),
		Substring:   round1(substring * 100),
	}
}

// PhoneticSimilarity averages binary agreement across Soundex, Metaphone
// and NYSIIS encodings, on a 0-100 scale rounded to one decimal place.
func (s *Scorer) PhoneticSimilarity(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)
	if a == "" || b == "" {
		return 0
	}

	agreements := 0.0
	metaA, _ := matchr.DoubleMetaphone(a)
	metaB, _ := matchr.DoubleMetaphone(b)
	if metaA == metaB {
		agreements++
	}
	if matchr.Soundex(a) == matchr.Soundex(b) {
		agreements++
	}
	if matchr.NYSIIS(a) == matchr.NYSIIS(b) {
		agreements++
	}

	return round1(agreements / 3.0 * 100)
}

// Score compares the target name against a stored candidate and builds
// the full result row. All five reported scores lie in [0.0, 1.0].
func (s *Scorer) Score(target string, candidate *core.Trademark) core.SimilarityResult {
	text := s.TextSimilarity(target, candidate.Name)
	phonetic := s.PhoneticSimilarity(target, candidate.Name)

	overall := text.JaroWinkler*textWeight + phonetic*phoneticWeight

	status := candidate.Status
	if status == "" {
		status = statusActive
	}

	return core.SimilarityResult{
		Name:              candidate.Name,
		ApplicationNumber: candidate.ApplicationNumber,
		Owner:             candidate.Applicant,
		Classification:    candidate.Class,
		Description:       candidate.Description,
		Status:            status,
		OverallSimilarity: overall / 100.0,
		TextSimilarity:    text.JaroWinkler / 100.0,
		// Text similarity stands in for a dedicated semantic score.
		SemanticSimilarity: text.JaroWinkler / 100.0,
		PhoneticSimilarity: phonetic / 100.0,
		ConfidenceScore:    overall / 100.0,
	}
}

// BuildReport filters the recalled candidates by vector score, scores the
// survivors against the target, and returns them sorted by descending
// overall similarity.
//
// When fewer than relaxedRecallSize raw candidates came back, the
// threshold is halved so near-empty indexes still surface matches.
func (s *Scorer) BuildReport(target string, candidates []vecstore.ScoredTrademark, threshold float64) *core.SimilarityReport {
	effective := threshold
	if len(candidates) < relaxedRecallSize {
		effective = threshold * 0.5
	}

	results := make([]core.SimilarityResult, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Score < effective {
			continue
		}
		results = append(results, s.Score(target, candidate.Record))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallSimilarity > results[j].OverallSimilarity
	})

	return &core.SimilarityReport{
		TargetTrademark: target,
		TotalCompared:   len(candidates),
		Found:           len(results),
		Results:         results,
	}
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
