// Package textrank scores sentences with damped power iteration over a
// similarity graph and extracts budgeted summaries. Pair similarity
// comes from embeddings when a provider is available and TF-IDF cosine
// otherwise, falling back per comparison rather than per call.
package textrank

// Method names the similarity source that fed the graph.
type Method string

const (
	MethodTFIDF Method = "tfidf"
	MethodBERT  Method = "bert"
)

// Config holds ranking and summary parameters
type Config struct {
	Damping          float64 `json:"dampingFactor"`
	Iterations       int     `json:"iterations"`
	MinSimilarity    float64 `json:"minSimilarity"`
	UseEmbeddings    bool    `json:"useBertEmbeddings"`
	MaxSummaryLength int     `json:"maxSummaryLength"`
	PositionWeight   float64 `json:"positionBiasWeight"`
	EntityWeight     float64 `json:"entityDensityWeight"`
}

// DefaultConfig returns the standard parameters. Zero boost weights are
// meaningful (they disable the boost), so callers override from here
// rather than from a zero Config.
func DefaultConfig() Config {
	return Config{
		Damping:          0.85,
		Iterations:       20,
		MinSimilarity:    0.15,
		UseEmbeddings:    false,
		MaxSummaryLength: 200,
		PositionWeight:   0.2,
		EntityWeight:     0.15,
	}
}

// SentenceScore is one ranked sentence with its boost components.
type SentenceScore struct {
	Text          string  `json:"text"`
	Index         int     `json:"index"`
	Score         float64 `json:"score"`
	Position      float64 `json:"position"`
	EntityDensity float64 `json:"entityDensity"`
}

// Summary is the extraction result.
type Summary struct {
	Summary   string          `json:"summary"`
	Sentences []SentenceScore `json:"sentences"`
	Method    Method          `json:"method"`
}
