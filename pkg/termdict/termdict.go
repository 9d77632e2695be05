// Package termdict provides a runtime dictionary of technical terms and
// acronyms using Aho-Corasick. A single automaton serves both dictionary
// lookup AND text scanning.
package termdict

import (
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/quarryhq/textcore/pkg/lexical"
)

// ============================================================================
// Normalization
// ============================================================================

// NormalizeTerm cleans and lowercases a term for matching. Hyphens,
// underscores and other punctuation collapse to single spaces, so
// "Machine-Learning", "machine_learning" and "machine learning" share
// one key.
func NormalizeTerm(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for _, ch := range s {
		c := unicode.ToLower(ch)

		// Curly apostrophe -> straight
		if c == '’' {
			out.WriteRune('\'')
			continue
		}

		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '\'' {
			out.WriteRune(c)
		} else {
			out.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(out.String()), " ")
}

// StopWords filtered during tokenization.
var StopWords = map[string]bool{
	"the": true, "of": true, "and": true, "a": true, "an": true,
	"to": true, "in": true, "on": true, "for": true, "at": true, "by": true,
	"is": true, "it": true, "as": true, "be": true, "was": true, "or": true,
	"are": true, "been": true, "with": true, "from": true, "into": true,
	"that": true, "this": true, "these": true, "those": true, "but": true,
	"has": true, "have": true, "had": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "not": true, "no": true,
	"his": true, "her": true, "its": true, "their": true, "our": true,
	"we": true, "you": true, "they": true, "he": true, "she": true,
	"i": true, "my": true, "your": true, "about": true, "which": true,
	"when": true, "what": true, "where": true, "how": true, "who": true,
	"also": true, "more": true, "some": true, "such": true, "than": true,
	"then": true, "there": true, "all": true, "any": true, "each": true,
	"other": true, "only": true, "one": true, "very": true, "just": true,
	"do": true, "does": true, "did": true, "so": true, "if": true,
}

// IsStopWord reports whether a token is a prose stopword.
func IsStopWord(tok string) bool {
	return StopWords[strings.ToLower(tok)]
}

// TokenizeNorm splits and normalizes text, filtering stop words.
func TokenizeNorm(text string) []string {
	normalized := NormalizeTerm(text)
	words := strings.Fields(normalized)

	result := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 0 && !StopWords[w] {
			result = append(result, w)
		}
	}
	return result
}

// ============================================================================
// Entry Types
// ============================================================================

// Kind classifies a dictionary entry.
type Kind int

const (
	KindTech Kind = iota
	KindAcronym
)

func (k Kind) String() string {
	if k == KindAcronym {
		return "ACRONYM"
	}
	return "TECH"
}

// Entry is one term registered in the dictionary.
type Entry struct {
	Term string
	Kind Kind
}

// ============================================================================
// Dictionary
// ============================================================================

// Dictionary scans text for known technical vocabulary via a compiled
// Aho-Corasick automaton. Immutable after New.
type Dictionary struct {
	ac ahocorasick.AhoCorasick

	// Normalized pattern -> pattern index
	patternIndex map[string]int

	// Index-aligned with patterns
	patterns []string
	kinds    []Kind

	// Uppercase acronym set for token checks
	acronyms map[string]bool
}

// New compiles a dictionary from entries. Duplicate normalized terms
// keep the first kind seen.
func New(entries []Entry) *Dictionary {
	d := &Dictionary{
		patternIndex: make(map[string]int, len(entries)),
		acronyms:     make(map[string]bool),
	}

	for _, e := range entries {
		key := NormalizeTerm(e.Term)
		if key == "" {
			continue
		}
		if e.Kind == KindAcronym {
			d.acronyms[strings.ToUpper(key)] = true
		}
		if _, exists := d.patternIndex[key]; exists {
			continue
		}
		d.patternIndex[key] = len(d.patterns)
		d.patterns = append(d.patterns, key)
		d.kinds = append(d.kinds, e.Kind)
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true, // keeps "ai" out of "maintain"
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	d.ac = builder.Build(d.patterns)

	return d
}

// Default builds the built-in lexicon: the acronym table plus common
// stack vocabulary, single and multi word.
func Default() *Dictionary {
	var entries []Entry
	for _, acr := range lexical.Acronyms() {
		entries = append(entries, Entry{Term: acr, Kind: KindAcronym})
	}
	for _, exp := range lexical.Expansions() {
		entries = append(entries, Entry{Term: exp, Kind: KindTech})
	}
	for _, term := range builtinTech {
		entries = append(entries, Entry{Term: term, Kind: KindTech})
	}
	return New(entries)
}

var builtinTech = []string{
	"kubernetes", "docker", "terraform", "ansible", "jenkins",
	"react", "angular", "vue", "svelte", "webpack", "vite",
	"typescript", "javascript", "python", "golang", "rust", "java",
	"kotlin", "swift", "node", "nodejs", "deno",
	"postgres", "postgresql", "mysql", "sqlite", "mongodb", "redis",
	"elasticsearch", "kafka", "rabbitmq", "nginx", "graphql",
	"github", "gitlab", "bitbucket", "oauth", "grpc", "websocket",
	"linux", "macos", "windows",
	"machine learning", "deep learning", "neural network",
	"artificial intelligence", "natural language processing",
	"continuous integration", "continuous deployment",
	"pull request", "code review", "unit test", "integration test",
	"dependency injection", "design pattern", "microservice",
	"event sourcing", "message queue", "load balancer",
}

// ============================================================================
// Lookup
// ============================================================================

// IsKnownTerm checks whether a surface form is in the dictionary.
func (d *Dictionary) IsKnownTerm(surface string) bool {
	_, ok := d.patternIndex[NormalizeTerm(surface)]
	return ok
}

// IsKnownAcronym reports whether a token is a registered acronym.
// Tokens longer than 6 runes never qualify.
func (d *Dictionary) IsKnownAcronym(tok string) bool {
	key := strings.ToUpper(strings.TrimSpace(tok))
	if len(key) < 2 || len(key) > 6 {
		return false
	}
	return d.acronyms[key]
}

// acronymStoplist holds common all-caps words that look like acronyms
// in prose but carry no entity signal.
var acronymStoplist = map[string]bool{
	"THE": true, "AND": true, "FOR": true, "NOT": true, "BUT": true,
	"ALL": true, "ANY": true, "NEW": true, "ARE": true, "WAS": true,
	"YOU": true, "CAN": true, "MAY": true, "ONE": true, "TWO": true,
	"TODO": true, "NOTE": true, "FIXME": true, "WARNING": true,
	"ERROR": true, "INFO": true, "DEBUG": true, "README": true,
	"OK": true, "NO": true, "YES": true, "VIA": true, "PER": true,
}

// IsStoplisted reports whether an all-caps token is common English
// rather than a meaningful acronym.
func IsStoplisted(tok string) bool {
	return acronymStoplist[strings.ToUpper(strings.TrimSpace(tok))]
}

// ============================================================================
// Text Scanning
// ============================================================================

// Match represents a detected term in text.
type Match struct {
	Start       int    // Byte offset start
	End         int    // Byte offset end
	MatchedText string // Original text slice
	Term        string // Normalized dictionary term
	Kind        Kind
}

// Scan finds all dictionary mentions in text (O(n) via AC). Case
// folding is handled by the automaton, so offsets always reference the
// original string.
func (d *Dictionary) Scan(text string) []Match {
	matches := d.ac.FindAll(text)
	result := make([]Match, 0, len(matches))

	for _, m := range matches {
		idx := m.Pattern()
		result = append(result, Match{
			Start:       m.Start(),
			End:         m.End(),
			MatchedText: text[m.Start():m.End()],
			Term:        d.patterns[idx],
			Kind:        d.kinds[idx],
		})
	}

	return result
}

// Len returns the number of compiled patterns.
func (d *Dictionary) Len() int {
	return len(d.patterns)
}

// ============================================================================
// Entity Density
// ============================================================================

// EntityDensity returns the share of words in text that read as
// technical entities: dictionary terms, known acronyms (stoplisted
// all-caps words excluded) and capitalized words that do not open a
// sentence. Clipped to [0,1]; 0 for empty text.
func (d *Dictionary) EntityDensity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	count := 0
	for i, w := range words {
		interior := i > 0 && !endsTerminal(words[i-1])
		if d.isEntityToken(w, interior) {
			count++
		}
	}

	density := float64(count) / float64(len(words))
	if density > 1 {
		density = 1
	}
	return density
}

func (d *Dictionary) isEntityToken(w string, interior bool) bool {
	tok := strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if utf8.RuneCountInString(tok) < 2 {
		return false
	}

	if isAllUpper(tok) {
		if IsStoplisted(tok) {
			return false
		}
		if d.IsKnownAcronym(tok) {
			return true
		}
		// Unknown all-caps mid-sentence still reads as a proper noun.
		return interior
	}
	if d.IsKnownTerm(tok) || d.IsKnownAcronym(tok) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(tok)
	return interior && unicode.IsUpper(r)
}

func isAllUpper(tok string) bool {
	for _, r := range tok {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func endsTerminal(w string) bool {
	return strings.HasSuffix(w, ".") || strings.HasSuffix(w, "!") ||
		strings.HasSuffix(w, "?")
}
