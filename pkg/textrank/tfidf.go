package textrank

import (
	"math"

	"github.com/quarryhq/textcore/pkg/termdict"
)

// SparseVec is a tf-idf weighted term vector for one sentence.
type SparseVec map[string]float64

// Vectorize builds tf-idf vectors over the sentence set, which is the
// whole corpus here: document frequency counts sentences. idf uses
// log(n/df)+1 so a term present in every sentence still carries weight.
// Sentences with no surviving tokens get empty vectors.
func Vectorize(sentences []string) []SparseVec {
	n := len(sentences)
	tokens := make([][]string, n)
	df := make(map[string]int)

	for i, s := range sentences {
		tokens[i] = termdict.TokenizeNorm(s)
		seen := make(map[string]bool, len(tokens[i]))
		for _, tok := range tokens[i] {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	vecs := make([]SparseVec, n)
	for i := range sentences {
		vec := make(SparseVec, len(tokens[i]))
		for _, tok := range tokens[i] {
			vec[tok]++
		}
		for tok, tf := range vec {
			vec[tok] = tf * (math.Log(float64(n)/float64(df[tok])) + 1)
		}
		vecs[i] = vec
	}
	return vecs
}

// Cosine returns the cosine similarity of two sparse vectors. An empty
// vector has no direction, so any comparison with one is 0.
func Cosine(a, b SparseVec) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for tok, wa := range a {
		if wb, ok := b[tok]; ok {
			dot += wa * wb
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v SparseVec) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
