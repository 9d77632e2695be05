package lexical

import (
	"strings"
	"unicode"
)

// DecomposeCompound splits a compound identifier into lowercase
// kebab-case. camelCase, PascalCase, acronym runs, digit boundaries,
// snake_case and space separated forms all normalize the same way:
// "XMLHttpRequest" -> "xml-http-request", "OAuth2" -> "o-auth-2".
// A lone all-caps word stays a single segment ("HTML" -> "html").
func DecomposeCompound(term string) string {
	runes := []rune(strings.TrimSpace(term))
	if len(runes) == 0 {
		return ""
	}

	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case i > 0 && boundaryBefore(runes, i):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	return strings.Join(words, "-")
}

// boundaryBefore reports whether a new word starts at index i.
func boundaryBefore(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]

	// camelCase and digit2Upper transitions.
	if unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
		return true
	}
	// An acronym run ends before the capital that starts the next word:
	// XMLHttp splits between L and H.
	if unicode.IsUpper(cur) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	// Letter/digit boundaries in both directions.
	if unicode.IsDigit(cur) && unicode.IsLetter(prev) {
		return true
	}
	if unicode.IsLetter(cur) && unicode.IsDigit(prev) {
		return true
	}
	return false
}
