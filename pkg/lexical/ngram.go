package lexical

import (
	"strings"
	"unicode"
)

// normalizeGramInput lowercases and strips non-alphanumeric runes.
func normalizeGramInput(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, unicode.ToLower(r))
		}
	}
	return out
}

// Ngrams returns the character n-grams of s after lowercasing and
// stripping non-alphanumeric runes. A normalized string shorter than n
// yields itself as the single gram. n < 1 or nothing left after
// normalization yields nil.
func Ngrams(s string, n int) []string {
	if n < 1 {
		return nil
	}
	runes := normalizeGramInput(s)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= n {
		return []string{string(runes)}
	}
	out := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		out = append(out, string(runes[i:i+n]))
	}
	return out
}

// Bigrams returns the character 2-grams of s.
func Bigrams(s string) []string { return Ngrams(s, 2) }

// Trigrams returns the character 3-grams of s.
func Trigrams(s string) []string { return Ngrams(s, 3) }

// WordNgrams returns n-grams over word tokens. Words split on spaces,
// hyphens and underscores and are lowercased; grams join with single
// spaces.
func WordNgrams(s string, n int) []string {
	if n < 1 {
		return nil
	}
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
	if len(words) == 0 {
		return nil
	}
	if len(words) <= n {
		return []string{strings.Join(words, " ")}
	}
	out := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		out = append(out, strings.Join(words[i:i+n], " "))
	}
	return out
}

// NgramJaccard computes Jaccard similarity over character n-gram sets.
// Two empty strings are identical (1.0); empty vs non-empty is 0.0.
func NgramJaccard(a, b string, n int) float64 {
	return jaccard(Ngrams(a, n), Ngrams(b, n))
}

// WordNgramJaccard computes Jaccard similarity over word n-gram sets.
func WordNgramJaccard(a, b string, n int) float64 {
	return jaccard(WordNgrams(a, n), WordNgrams(b, n))
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	setA := make(map[string]bool, len(a))
	for _, g := range a {
		setA[g] = true
	}
	setB := make(map[string]bool, len(b))
	for _, g := range b {
		setB[g] = true
	}

	inter := 0
	for g := range setA {
		if setB[g] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}
