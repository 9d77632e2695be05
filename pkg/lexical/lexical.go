// Package lexical provides string-level metrics for term matching:
// phonetic codes, singular/plural inflection, compound decomposition,
// n-gram overlap, acronym expansion and edit distance. All functions are
// stateless and safe for concurrent use.
package lexical

import "strings"

// NormalizeTerm lowercases a term, trims it and collapses inner
// whitespace to single spaces.
func NormalizeTerm(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// asciiLetters uppercases s and strips everything outside A-Z.
func asciiLetters(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			out = append(out, c)
		}
	}
	return out
}
