package worthiness

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarryhq/textcore/pkg/doc"
	"github.com/quarryhq/textcore/pkg/embedding"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), nil)
}

func TestTopicShiftShortContent(t *testing.T) {
	e := newTestEngine()
	assert.Zero(t, e.TopicShift("short note", nil, ""))
}

func TestTopicShiftNeutralWithoutDocument(t *testing.T) {
	e := newTestEngine()
	shift := e.TopicShift("gardening tips for tomato plants", nil, "")
	assert.InDelta(t, 0.5, shift, 1e-9)
}

func TestTopicShiftAlignedVsDivergent(t *testing.T) {
	e := newTestEngine()
	content := "Kubernetes and Docker deployment workflow"

	aligned := e.TopicShift(content, []string{"Kubernetes", "Docker", "Deployment", "Workflow"}, "")
	assert.InDelta(t, 0.0, aligned, 1e-9)

	divergent := e.TopicShift(content, []string{"finance", "budgeting"}, "")
	assert.InDelta(t, 1.0, divergent, 1e-9)

	partial := e.TopicShift(content, []string{"Kubernetes", "Docker"}, "")
	assert.InDelta(t, 0.5, partial, 1e-9)
}

func TestTopicShiftTagFolding(t *testing.T) {
	e := newTestEngine()

	// Terms: "machine", "learning" plus the scanned "machine learning",
	// of which only the scanned one matches the hyphenated tag.
	shift := e.TopicShift("machine learning machine learning", []string{"Machine-Learning"}, "")
	assert.InDelta(t, 2.0/3.0, shift, 1e-9)
}

func TestTopicShiftDocumentContent(t *testing.T) {
	e := newTestEngine()
	content := "Kubernetes and Docker deployment workflow"

	shift := e.TopicShift(content, nil, "Our Kubernetes and Docker deployment workflow notes.")
	assert.InDelta(t, 0.0, shift, 1e-9)
}

func TestEntityDensityFewWords(t *testing.T) {
	e := newTestEngine()
	assert.Zero(t, e.EntityDensity("Uses Kubernetes daily"))
}

func TestEntityDensity(t *testing.T) {
	e := newTestEngine()

	// Kubernetes and AWS out of seven words.
	density := e.EntityDensity("We deployed Kubernetes clusters on AWS today")
	assert.InDelta(t, 2.0/7.0, density, 1e-9)
}

func TestSemanticNoveltyShortContent(t *testing.T) {
	e := newTestEngine()
	got := e.SemanticNovelty(context.Background(), "brief", []string{"The deploy pipeline rebuilds the cluster every night."}, nil)
	assert.Zero(t, got)
}

func TestSemanticNoveltyNoValidNeighbors(t *testing.T) {
	e := newTestEngine()
	content := "The sandbox cluster rebuilds itself every night."

	assert.InDelta(t, 0.5, e.SemanticNovelty(context.Background(), content, nil, nil), 1e-9)
	assert.InDelta(t, 0.5, e.SemanticNovelty(context.Background(), content, []string{"tiny", ""}, nil), 1e-9)
}

func TestSemanticNoveltyLexical(t *testing.T) {
	e := newTestEngine()
	content := "Kubernetes schedules containers across the worker fleet."

	same := e.SemanticNovelty(context.Background(), content, []string{content}, nil)
	assert.InDelta(t, 0.0, same, 1e-9)

	disjoint := e.SemanticNovelty(context.Background(), content,
		[]string{"Our quarterly budget review meeting happens tomorrow morning."}, nil)
	assert.InDelta(t, 1.0, disjoint, 1e-9)
}

func TestSemanticNoveltyEmbeddings(t *testing.T) {
	e := newTestEngine()
	p := embedding.ProviderFunc(func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	})

	// Identical vectors read as zero novelty even for unrelated prose.
	got := e.SemanticNovelty(context.Background(), "Kubernetes schedules containers across the worker fleet.",
		[]string{"Our quarterly budget review meeting happens tomorrow morning."}, p)
	assert.InDelta(t, 0.0, got, 1e-6)
}

func TestSemanticNoveltyProviderFailureFallsBack(t *testing.T) {
	e := newTestEngine()
	content := "Kubernetes schedules containers across the worker fleet."

	failing := embedding.ProviderFunc(func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedder down")
	})
	got := e.SemanticNovelty(context.Background(), content, []string{content}, failing)
	assert.InDelta(t, 0.0, got, 1e-9)

	degenerate := embedding.ProviderFunc(func(ctx context.Context, text string) ([]float32, error) {
		return []float32{}, nil
	})
	got = e.SemanticNovelty(context.Background(), content,
		[]string{"Our quarterly budget review meeting happens tomorrow morning."}, degenerate)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestEvaluateStructuralOverrides(t *testing.T) {
	e := newTestEngine()

	table := e.Evaluate(context.Background(), doc.Block{
		ID:      "t1",
		Type:    doc.BlockTable,
		Content: "| product | quarterly revenue | growth | headcount | forecast |",
	}, Context{})
	assert.False(t, table.Worthy)
	assert.Zero(t, table.Score)
	assert.Equal(t, "table blocks are not extracted", table.Reasoning)

	html := e.Evaluate(context.Background(), doc.Block{ID: "h1", Type: doc.BlockHTML, Content: "<div>embedded widget markup goes here</div>"}, Context{})
	assert.False(t, html.Worthy)
	assert.Equal(t, "html blocks are not extracted", html.Reasoning)
}

func TestEvaluateTooShort(t *testing.T) {
	e := newTestEngine()

	r := e.Evaluate(context.Background(), doc.Block{ID: "b1", Type: doc.BlockParagraph, Content: "Short."}, Context{})
	assert.False(t, r.Worthy)
	assert.Zero(t, r.Score)
	assert.Equal(t, "content too short", r.Reasoning)
}

func TestEvaluateDivergentBlockIsWorthy(t *testing.T) {
	e := newTestEngine()
	block := doc.Block{
		ID:      "b1",
		Type:    doc.BlockParagraph,
		Content: "Kubernetes orchestrates GPU workloads across regional clusters for the platform team.",
	}

	r := e.Evaluate(context.Background(), block, Context{
		DocumentTags: []string{"finance", "budget"},
	})

	// Full topic shift, 2 entities in 11 words, neutral novelty.
	want := 0.4*1.0 + 0.3*(2.0/11.0) + 0.3*0.5
	assert.InDelta(t, want, r.Score, 1e-9)
	assert.True(t, r.Worthy)
	assert.Equal(t, "shifts topic from the document; novel against neighbors", r.Reasoning)
	assert.InDelta(t, 1.0, r.Signals.TopicShift, 1e-9)
}

func TestEvaluateAlignedBlockIsUnworthy(t *testing.T) {
	e := newTestEngine()
	content := "Go channels coordinate goroutine communication across worker pools"
	block := doc.Block{ID: "b1", Type: doc.BlockParagraph, Content: content}

	r := e.Evaluate(context.Background(), block, Context{
		DocumentContent: content,
		Surrounding:     []string{content},
	})

	assert.False(t, r.Worthy)
	assert.InDelta(t, 0.0, r.Score, 1e-9)
	assert.Equal(t, "no dominant signal", r.Reasoning)
}

func TestEvaluateAll(t *testing.T) {
	e := newTestEngine()
	blocks := []doc.Block{
		{ID: "a", Type: doc.BlockParagraph, Content: "Kubernetes orchestrates GPU workloads across regional clusters for the platform team."},
		{ID: "b", Type: doc.BlockParagraph, Content: "tiny"},
		{ID: "c", Type: doc.BlockTable, Content: "| col | col |"},
	}

	results := e.EvaluateAll(context.Background(), blocks, "", []string{"finance"})

	assert.Len(t, results, 3)
	assert.True(t, results["a"].Worthy)
	assert.Equal(t, "content too short", results["b"].Reasoning)
	assert.Equal(t, "table blocks are not extracted", results["c"].Reasoning)
}

func TestEvaluateAllSurroundingExcludesSelf(t *testing.T) {
	e := newTestEngine()
	blocks := []doc.Block{
		{ID: "x", Type: doc.BlockParagraph, Content: "Kubernetes orchestrates GPU workloads across regional clusters for the platform team."},
	}

	results := e.EvaluateAll(context.Background(), blocks, "", nil)

	// A lone block has no neighbors, so novelty stays neutral.
	assert.InDelta(t, 0.5, results["x"].Signals.SemanticNovelty, 1e-9)
}

func TestFilterWorthy(t *testing.T) {
	blocks := []doc.Block{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	results := map[string]Result{
		"a": {Worthy: true},
		"b": {Worthy: false},
		"d": {Worthy: true},
	}

	kept := FilterWorthy(blocks, results)

	ids := make([]string, len(kept))
	for i, b := range kept {
		ids[i] = b.ID
	}
	assert.Equal(t, []string{"a", "d"}, ids)
}
