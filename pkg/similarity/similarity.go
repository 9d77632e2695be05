// Package similarity scores term pairs through a tier ladder: exact,
// acronym, plural, compound, levenshtein, phonetic. The first tier that
// matches wins and names the method, so callers can explain a match.
package similarity

import (
	"sort"

	"github.com/quarryhq/textcore/pkg/lexical"
)

// Method identifies the comparison tier that produced a score.
type Method string

const (
	MethodExact       Method = "exact"
	MethodAcronym     Method = "acronym"
	MethodPlural      Method = "plural"
	MethodCompound    Method = "compound"
	MethodLevenshtein Method = "levenshtein"
	MethodPhonetic    Method = "phonetic"
	MethodNone        Method = "none"
)

// Result carries a similarity score and the method that produced it.
type Result struct {
	Score  float64 `json:"score"`
	Method Method  `json:"method"`
}

// Config holds matching parameters
type Config struct {
	Threshold        float64 `json:"similarityScoreThreshold"`
	LevenshteinFloor float64 `json:"levenshteinFloor"`
}

func DefaultConfig() Config {
	return Config{
		Threshold:        0.6,
		LevenshteinFloor: 0.5,
	}
}

// withDefaults fills unset fields so a zero Config still behaves.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Threshold <= 0 {
		c.Threshold = def.Threshold
	}
	if c.LevenshteinFloor <= 0 {
		c.LevenshteinFloor = def.LevenshteinFloor
	}
	return c
}

// Score compares two terms with default parameters.
func Score(a, b string) Result {
	return scoreWith(a, b, DefaultConfig())
}

// scoreWith walks the tier ladder. Each tier is consulted only when
// every tier above it failed, so a fixed-score tier can never shadow a
// better one.
func scoreWith(a, b string, cfg Config) Result {
	na := lexical.NormalizeTerm(a)
	nb := lexical.NormalizeTerm(b)
	if na == "" || nb == "" {
		return Result{Score: 0, Method: MethodNone}
	}
	if na == nb {
		return Result{Score: 1.0, Method: MethodExact}
	}
	if lexical.AreAcronymMatches(a, b) {
		return Result{Score: 0.95, Method: MethodAcronym}
	}
	if lexical.AreSingularPluralPair(a, b) {
		return Result{Score: 0.95, Method: MethodPlural}
	}
	// Decomposition needs the original casing: camel boundaries are
	// gone after normalization.
	if lexical.DecomposeCompound(a) == lexical.DecomposeCompound(b) {
		return Result{Score: 0.9, Method: MethodCompound}
	}
	if sim := lexical.LevenshteinSimilarity(na, nb); sim > cfg.LevenshteinFloor {
		return Result{Score: sim, Method: MethodLevenshtein}
	}
	if samePhonetic(na, nb) {
		return Result{Score: 0.7, Method: MethodPhonetic}
	}
	return Result{Score: 0, Method: MethodNone}
}

func samePhonetic(a, b string) bool {
	if sa := lexical.Soundex(a); sa != "" && sa == lexical.Soundex(b) {
		return true
	}
	if ma := lexical.Metaphone(a); ma != "" && ma == lexical.Metaphone(b) {
		return true
	}
	return false
}

// AreSimilar reports whether the tiered score clears cfg.Threshold.
func AreSimilar(a, b string, cfg Config) bool {
	cfg = cfg.withDefaults()
	return scoreWith(a, b, cfg).Score >= cfg.Threshold
}

// Match pairs a candidate term with its score against the query term.
type Match struct {
	Term   string  `json:"term"`
	Score  float64 `json:"score"`
	Method Method  `json:"method"`
}

// RankCandidates scores every candidate against term, keeps those at or
// above cfg.Threshold and orders them by score descending. Equal scores
// keep candidate input order.
func RankCandidates(term string, candidates []string, cfg Config) []Match {
	cfg = cfg.withDefaults()
	var out []Match
	for _, cand := range candidates {
		r := scoreWith(term, cand, cfg)
		if r.Score >= cfg.Threshold {
			out = append(out, Match{Term: cand, Score: r.Score, Method: r.Method})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
