package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/tandamark/core"
	"github.com/poiesic/tandamark/vecstore"
)

func TestLongestCommonSubstring(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "kopi", "kopi", 4},
		{"partial overlap", "nusantara", "antariksa", 5}, // "antar"
		{"no overlap", "abc", "xyz", 0},
		{"empty", "", "kopi", 0},
		{"unicode", "café", "café latte", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, longestCommonSubstring(tt.a, tt.b))
		})
	}
}

func TestTextSimilarity_Identical(t *testing.T) {
	scorer := NewScorer()
	scores := scorer.TextSimilarity("Kopi Nusantara", "Kopi Nusantara")

	assert.Equal(t, 100.0, scores.Levenshtein)
	assert.Equal(t, 100.0, scores.JaroWinkler)
	assert.Equal(t, 100.0, scores.Substring)
}

func TestTextSimilarity_CaseAndSpaceInsensitive(t *testing.T) {
	scorer := NewScorer()
	scores := scorer.TextSimilarity("  KOPI NUSANTARA ", "kopi nusantara")

	assert.Equal(t, 100.0, scores.Levenshtein)
	assert.Equal(t, 100.0, scores.JaroWinkler)
}

func TestTextSimilarity_Blank(t *testing.T) {
	scorer := NewScorer()
	assert.Equal(t, TextScores{}, scorer.TextSimilarity("", "kopi"))
	assert.Equal(t, TextScores{}, scorer.TextSimilarity("kopi", "   "))
}

func TestTextSimilarity_Containment(t *testing.T) {
	scorer := NewScorer()
	scores := scorer.TextSimilarity("Pinus", "Pinus Raya")

	assert.Equal(t, 100.0, scores.Substring, "contained names score full substring similarity")
	assert.Equal(t, 50.0, scores.Levenshtein, "five appended runes out of ten")
	assert.Greater(t, scores.JaroWinkler, 80.0)
}

func TestTextSimilarity_Disjoint(t *testing.T) {
	scorer := NewScorer()
	scores := scorer.TextSimilarity("abc", "xyz")

	assert.Equal(t, 0.0, scores.Levenshtein)
	assert.Equal(t, 0.0, scores.JaroWinkler)
	assert.Equal(t, 0.0, scores.Substring)
}

func TestPhoneticSimilarity(t *testing.T) {
	scorer := NewScorer()

	t.Run("identical", func(t *testing.T) {
		assert.Equal(t, 100.0, scorer.PhoneticSimilarity("Nusantara", "Nusantara"))
	})

	t.Run("homophones agree", func(t *testing.T) {
		assert.Equal(t, 100.0, scorer.PhoneticSimilarity("Smith", "Smyth"))
	})

	t.Run("unrelated names disagree", func(t *testing.T) {
		assert.Equal(t, 0.0, scorer.PhoneticSimilarity("Kopi", "Xylophone"))
	})

	t.Run("blank input", func(t *testing.T) {
		assert.Equal(t, 0.0, scorer.PhoneticSimilarity("", "Kopi"))
	})
}

func TestScore_IdenticalName(t *testing.T) {
	scorer := NewScorer()
	candidate := &core.Trademark{
		Name:              "Kopi Nusantara",
		ApplicationNumber: "DID2024001",
		Class:             "30",
		Applicant:         "PT Maju Jaya",
		Description:       "Kopi bubuk",
	}

	result := scorer.Score("Kopi Nusantara", candidate)

	assert.Equal(t, "Kopi Nusantara", result.Name)
	assert.Equal(t, "DID2024001", result.ApplicationNumber)
	assert.Equal(t, "PT Maju Jaya", result.Owner)
	assert.Equal(t, "30", result.Classification)
	assert.Equal(t, "Kopi bubuk", result.Description)
	assert.Equal(t, "Active", result.Status)

	assert.Equal(t, 1.0, result.OverallSimilarity)
	assert.Equal(t, 1.0, result.TextSimilarity)
	assert.Equal(t, 1.0, result.PhoneticSimilarity)
	assert.Equal(t, result.TextSimilarity, result.SemanticSimilarity)
	assert.Equal(t, result.OverallSimilarity, result.ConfidenceScore)
}

func TestScore_StoredStatusSurvives(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score("Kopi", &core.Trademark{Name: "Kopi", Status: "Expired"})
	assert.Equal(t, "Expired", result.Status)

	result = scorer.Score("Kopi", &core.Trademark{Name: "Kopi"})
	assert.Equal(t, "Active", result.Status, "missing status defaults to Active")
}

func TestScore_BoundsAndInvariants(t *testing.T) {
	scorer := NewScorer()
	pairs := [][2]string{
		{"Kopi Nusantara", "Kopi Nusantara"},
		{"Pinus", "Pinus Raya"},
		{"Smith", "Smyth"},
		{"abc", "xyz"},
		{"Teh Botol", ""},
	}

	for _, pair := range pairs {
		result := scorer.Score(pair[0], &core.Trademark{Name: pair[1]})

		for name, score := range map[string]float64{
			"overall":  result.OverallSimilarity,
			"text":     result.TextSimilarity,
			"semantic": result.SemanticSimilarity,
			"phonetic": result.PhoneticSimilarity,
			"conf":     result.ConfidenceScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, "%s for %v", name, pair)
			assert.LessOrEqual(t, score, 1.0, "%s for %v", name, pair)
		}

		assert.Equal(t, result.TextSimilarity, result.SemanticSimilarity)
		assert.Equal(t, result.OverallSimilarity, result.ConfidenceScore)
	}
}

func candidate(name string, score float64) vecstore.ScoredTrademark {
	return vecstore.ScoredTrademark{
		Record: &core.Trademark{Name: name},
		Score:  score,
	}
}

func TestBuildReport_ThresholdFiltering(t *testing.T) {
	scorer := NewScorer()
	candidates := []vecstore.ScoredTrademark{
		candidate("Pinus Raya", 0.2),
		candidate("Pinus Mas", 0.15),
		candidate("Teh Botol", 0.1),
		candidate("Kecap Manis", 0.05),
	}

	report := scorer.BuildReport("Pinus", candidates, 0.15)

	assert.Equal(t, "Pinus", report.TargetTrademark)
	assert.Equal(t, 4, report.TotalCompared)
	assert.Equal(t, 2, report.Found)
	require.Len(t, report.Results, 2)
	for _, result := range report.Results {
		assert.Contains(t, []string{"Pinus Raya", "Pinus Mas"}, result.Name)
	}
}

func TestBuildReport_RelaxedRecall(t *testing.T) {
	scorer := NewScorer()
	// Both candidates sit below the threshold, but with fewer than three
	// raw candidates the halved threshold retains the closer one.
	candidates := []vecstore.ScoredTrademark{
		candidate("Pinus Raya", 0.1),
		candidate("Teh Botol", 0.05),
	}

	report := scorer.BuildReport("Pinus", candidates, 0.15)

	assert.Equal(t, 2, report.TotalCompared)
	assert.Equal(t, 1, report.Found)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "Pinus Raya", report.Results[0].Name)
}

func TestBuildReport_SortedByOverallDescending(t *testing.T) {
	scorer := NewScorer()
	candidates := []vecstore.ScoredTrademark{
		candidate("Zanzibar", 0.9),
		candidate("Pinus", 0.5),
		candidate("Pinus Raya", 0.7),
	}

	report := scorer.BuildReport("Pinus", candidates, 0.15)

	require.Len(t, report.Results, 3)
	assert.Equal(t, "Pinus", report.Results[0].Name)
	for i := 1; i < len(report.Results); i++ {
		assert.GreaterOrEqual(t,
			report.Results[i-1].OverallSimilarity,
			report.Results[i].OverallSimilarity)
	}
}

func TestBuildReport_ThresholdMonotonic(t *testing.T) {
	scorer := NewScorer()
	candidates := []vecstore.ScoredTrademark{
		candidate("Pinus Raya", 0.9),
		candidate("Pinus Mas", 0.6),
		candidate("Teh Botol", 0.3),
		candidate("Kecap Manis", 0.1),
	}

	// Raising the threshold can only shrink the result set.
	prev := len(candidates) + 1
	for _, threshold := range []float64{0.0, 0.1, 0.3, 0.5, 0.7, 0.95} {
		report := scorer.BuildReport("Pinus", candidates, threshold)
		assert.LessOrEqual(t, report.Found, prev,
			"threshold %.2f surfaced more results than a lower one", threshold)
		prev = report.Found
	}
}

func TestBuildReport_NoCandidates(t *testing.T) {
	scorer := NewScorer()
	report := scorer.BuildReport("Pinus", nil, 0.15)

	assert.Equal(t, 0, report.TotalCompared)
	assert.Equal(t, 0, report.Found)
	assert.Empty(t, report.Results)
}
