// Package suggest proposes link targets for a term by fusing tiered
// lexical similarity over the workspace's registered terms with
// approximate nearest-neighbor search over their embeddings. The index
// is transient and single-goroutine; callers rebuild it on demand.
package suggest

import (
	"fmt"
	"sort"

	"github.com/fogfish/hnsw"
	"github.com/fogfish/hnsw/vector"
	kvector "github.com/kshard/vector"

	"github.com/quarryhq/textcore/pkg/embedding"
	"github.com/quarryhq/textcore/pkg/lexical"
	"github.com/quarryhq/textcore/pkg/similarity"
)

// Suggestion sources.
const (
	SourceLexical = "lexical"
	SourceVector  = "vector"
	SourceBoth    = "both"
)

// Suggestion is one proposed link target.
type Suggestion struct {
	Term   string  `json:"term"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

// Index holds the registered terms of a workspace: every term joins the
// lexical side, terms with embeddings additionally join the HNSW graph.
type Index struct {
	cfg   similarity.Config
	dim   int
	terms []string
	known map[string]bool

	ann  *hnsw.HNSW[vector.VF32]
	ids  map[string]uint32
	byID map[uint32]string
}

// New returns an empty index for vectors of the given dimension.
func New(dim int, cfg similarity.Config) *Index {
	return &Index{
		cfg:   cfg,
		dim:   dim,
		known: make(map[string]bool),
		ann:   hnsw.New[vector.VF32](vector.SurfaceVF32(kvector.Cosine())),
		ids:   make(map[string]uint32),
		byID:  make(map[uint32]string),
	}
}

// Len returns the number of registered terms.
func (ix *Index) Len() int { return len(ix.terms) }

// Add registers a term. A nil vec registers it lexical-only; a non-nil
// vec must match the index dimension. Re-adding a term is a no-op and
// a vector attaches to a term at most once.
func (ix *Index) Add(term string, vec []float32) error {
	if vec != nil && len(vec) != ix.dim {
		return fmt.Errorf("vector dimension mismatch: expected %d, got %d", ix.dim, len(vec))
	}

	if !ix.known[term] {
		ix.known[term] = true
		ix.terms = append(ix.terms, term)
	}
	if vec == nil {
		return nil
	}
	if _, ok := ix.ids[term]; ok {
		return nil
	}

	id := uint32(len(ix.byID))
	ix.ids[term] = id
	ix.byID[id] = term
	ix.ann.Insert(vector.VF32{Key: id, Vec: vec})
	return nil
}

// Suggest returns up to limit link candidates for term, best first. The
// lexical side ranks every registered term with the tiered scorer; the
// vector side runs a k-NN search when queryVec is usable and any
// embeddings are indexed, scoring hits as (1+cosine)/2. A term found by
// both sides keeps its higher score with Source "both". The query term
// itself is never suggested.
func (ix *Index) Suggest(term string, queryVec []float32, limit int) []Suggestion {
	if limit <= 0 {
		return nil
	}
	self := lexical.NormalizeTerm(term)

	merged := make(map[string]*Suggestion)
	for _, m := range similarity.RankCandidates(term, ix.terms, ix.cfg) {
		if lexical.NormalizeTerm(m.Term) == self {
			continue
		}
		merged[m.Term] = &Suggestion{Term: m.Term, Score: m.Score, Source: SourceLexical}
	}

	if len(queryVec) == ix.dim && len(ix.ids) > 0 {
		k := limit + 1
		ef := k * 2
		if ef < 100 {
			ef = 100
		}
		for _, r := range ix.ann.Search(vector.VF32{Vec: queryVec}, k, ef) {
			cand, ok := ix.byID[r.Key]
			if !ok || lexical.NormalizeTerm(cand) == self {
				continue
			}
			score := (1 + embedding.CosineSimilarity(queryVec, r.Vec)) / 2
			if s, found := merged[cand]; found {
				s.Source = SourceBoth
				if score > s.Score {
					s.Score = score
				}
			} else {
				merged[cand] = &Suggestion{Term: cand, Score: score, Source: SourceVector}
			}
		}
	}

	out := make([]Suggestion, 0, len(merged))
	for _, s := range merged {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
