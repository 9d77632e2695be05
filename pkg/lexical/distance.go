package lexical

import "strings"

// Levenshtein computes the edit distance between a and b over runes
// using the full dynamic programming matrix.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}
	return d[la][lb]
}

// LevenshteinSimilarity maps edit distance into [0,1] as
// 1 - distance/maxLen. Two empty strings are identical (1.0).
func LevenshteinSimilarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := max(la, lb)
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// DefaultMinSubstringLength guards against trivially short needles.
const DefaultMinSubstringLength = 4

// substringRatioFloor is the minimum share of the longer term the
// shorter one must cover. Keeps short tokens from matching inside long
// unrelated terms.
const substringRatioFloor = 0.4

// IsSubstringMatch reports whether the shorter of a and b appears inside
// the longer, case-insensitively. The shorter side must have at least
// minLength runes and cover at least 40% of the longer side.
func IsSubstringMatch(a, b string, minLength int) bool {
	sa := NormalizeTerm(a)
	sb := NormalizeTerm(b)
	if sa == "" || sb == "" {
		return false
	}

	shorter, longer := sa, sb
	ls, ll := len([]rune(sa)), len([]rune(sb))
	if ls > ll {
		shorter, longer = sb, sa
		ls, ll = ll, ls
	}

	if ls < minLength {
		return false
	}
	if float64(ls)/float64(ll) < substringRatioFloor {
		return false
	}
	return strings.Contains(longer, shorter)
}
