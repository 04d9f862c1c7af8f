package search

import "strings"

// normalize lowercases and trims a name before comparison. All metric
// functions expect normalized input.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// longestCommonSubstring returns the length of the longest contiguous
// substring shared by a and b, computed over runes.
func longestCommonSubstring(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Single-row DP keeps memory at O(len(b)).
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	longest := 0

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > longest {
					longest = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return longest
}
