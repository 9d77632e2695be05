// Package sentence splits prose into sentences and filters out
// fragments that are not prose (code, URLs, symbol runs).
package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinSentenceLength is the shortest fragment kept by Tokenize.
const MinSentenceLength = 10

// DefaultMinWords is the word floor used by IsValid when the caller
// passes a non-positive value.
const DefaultMinWords = 3

// ============================================================================
// Tokenization
// ============================================================================

// Dotted forms that never close a sentence.
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"sr.": true, "jr.": true, "vs.": true, "etc.": true, "e.g.": true,
	"i.e.": true, "inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"st.": true, "ave.": true, "fig.": true, "al.": true, "approx.": true,
	"dept.": true, "est.": true, "min.": true, "max.": true, "no.": true,
	"vol.": true,
}

// Tokenize splits text into sentences. A boundary is a run of ./!/?
// followed by whitespace and an uppercase letter, or by end of text.
// Periods inside decimals, URLs and known abbreviations do not split:
// a dot inside a decimal or URL never precedes whitespace, so the
// boundary test alone covers those; abbreviations need the explicit
// guard. Fragments shorter than MinSentenceLength are dropped.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	segStart := 0

	i := 0
	for i < len(runes) {
		if !isTerminal(runes[i]) {
			i++
			continue
		}

		// Consume the whole terminal run ("?!", "...").
		end := i
		for end+1 < len(runes) && isTerminal(runes[end+1]) {
			end++
		}

		if end == i && runes[i] == '.' && isProtectedPeriod(runes, i) {
			i++
			continue
		}
		if !closesSentence(runes, end) {
			i = end + 1
			continue
		}

		sentences = appendFragment(sentences, string(runes[segStart:end+1]))
		segStart = end + 1
		i = end + 1
	}
	if segStart < len(runes) {
		sentences = appendFragment(sentences, string(runes[segStart:]))
	}

	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// isProtectedPeriod reports whether the period at i sits inside a
// decimal number or ends a known abbreviation.
func isProtectedPeriod(runes []rune, i int) bool {
	if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return true
	}

	// Walk back over letters and interior dots so "e.g." resolves as
	// one token.
	start := i
	for start > 0 && (unicode.IsLetter(runes[start-1]) || runes[start-1] == '.') {
		start--
	}
	if start == i {
		return false
	}
	return abbreviations[strings.ToLower(string(runes[start:i+1]))]
}

// closesSentence reports whether the terminal run ending at end is
// followed by whitespace and an uppercase letter, or by end of text.
func closesSentence(runes []rune, end int) bool {
	j := end + 1
	if j >= len(runes) {
		return true
	}
	if !unicode.IsSpace(runes[j]) {
		return false
	}
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return true
	}
	return unicode.IsUpper(runes[j])
}

func appendFragment(sentences []string, frag string) []string {
	frag = strings.TrimSpace(frag)
	if utf8.RuneCountInString(frag) < MinSentenceLength {
		return sentences
	}
	return append(sentences, frag)
}

// ============================================================================
// Validation
// ============================================================================

var codeMarkers = []string{
	"import ", "const ", "function ", "export default", "=>", ":=",
}

// IsValid reports whether text reads as a prose sentence: at least
// minWords words, no code markers or symbol-heavy syntax, not a bare
// URL, and mostly alphanumeric.
func IsValid(text string, minWords int) bool {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	words := strings.Fields(trimmed)
	if len(words) < minWords {
		return false
	}
	if looksLikeCode(trimmed) {
		return false
	}
	if allURLs(words) {
		return false
	}
	return alnumDominated(trimmed)
}

// looksLikeCode matches markers case-sensitively: code keywords are
// lowercase, and prose openers like "Import the data" should pass.
func looksLikeCode(s string) bool {
	for _, m := range codeMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	if strings.Contains(s, "{") && strings.Contains(s, "}") {
		return true
	}
	symbols := strings.Count(s, "(") + strings.Count(s, ")") +
		strings.Count(s, ";") + strings.Count(s, "=")
	return symbols*8 > len(s)
}

// IsURL reports whether a single token looks like a web address.
func IsURL(token string) bool {
	lower := strings.ToLower(token)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "www.")
}

func allURLs(words []string) bool {
	for _, w := range words {
		if !IsURL(w) {
			return false
		}
	}
	return true
}

// alnumDominated reports whether at least half of the non-space runes
// are letters or digits.
func alnumDominated(s string) bool {
	var alnum, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return total > 0 && alnum*2 >= total
}
