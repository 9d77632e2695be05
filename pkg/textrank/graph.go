package textrank

import (
	"context"

	"github.com/quarryhq/textcore/pkg/embedding"
)

// Graph is a symmetric weighted adjacency map keyed by sentence index.
// Absent edges are absent, never stored as zero weights.
type Graph map[int]map[int]float64

// NewGraph creates an empty graph
func NewGraph() Graph {
	return make(Graph)
}

// AddEdge stores weight w in both directions. Self-edges are refused.
func (g Graph) AddEdge(i, j int, w float64) {
	if i == j {
		return
	}
	if g[i] == nil {
		g[i] = make(map[int]float64)
	}
	if g[j] == nil {
		g[j] = make(map[int]float64)
	}
	g[i][j] = w
	g[j][i] = w
}

// Neighbors returns the adjacency row of node i, nil when isolated.
func (g Graph) Neighbors(i int) map[int]float64 {
	return g[i]
}

// Weight returns the edge weight between i and j, 0 when absent.
func (g Graph) Weight(i, j int) float64 {
	return g[i][j]
}

// Len returns the number of nodes that carry at least one edge.
func (g Graph) Len() int {
	return len(g)
}

// EdgeCount returns the number of undirected edges.
func (g Graph) EdgeCount() int {
	count := 0
	for _, row := range g {
		count += len(row)
	}
	return count / 2
}

// BuildGraph computes pairwise sentence similarity and keeps edges at
// or above cfg.MinSimilarity. With embeddings enabled and a provider
// present, pair weight is embedding cosine; a sentence whose embedding
// fails degrades its pairs to tf-idf cosine without aborting the build.
// The returned Method is MethodBERT only when every sentence embedded
// cleanly, so every pair weight came from embeddings.
func BuildGraph(ctx context.Context, sentences []string, cfg Config, p embedding.Provider) (Graph, Method) {
	g := NewGraph()
	n := len(sentences)
	if n < 2 {
		return g, MethodTFIDF
	}

	vecs := Vectorize(sentences)

	var embs [][]float32
	method := MethodTFIDF
	if cfg.UseEmbeddings && p != nil {
		embs = make([][]float32, n)
		method = MethodBERT
		for i, s := range sentences {
			v, err := p.Embed(ctx, s)
			if err != nil || len(v) == 0 {
				method = MethodTFIDF
				continue
			}
			embs[i] = v
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var w float64
			if embs != nil && embs[i] != nil && embs[j] != nil {
				w = embedding.CosineSimilarity(embs[i], embs[j])
			} else {
				w = Cosine(vecs[i], vecs[j])
			}
			if w >= cfg.MinSimilarity {
				g.AddEdge(i, j, w)
			}
		}
	}
	return g, method
}
