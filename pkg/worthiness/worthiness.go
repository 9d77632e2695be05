// Package worthiness scores content blocks for extraction into
// standalone notes. Three signals (topic shift, entity density and
// semantic novelty) combine into a weighted score, with structural
// overrides for block types that never extract well.
package worthiness

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/quarryhq/textcore/pkg/doc"
	"github.com/quarryhq/textcore/pkg/embedding"
	"github.com/quarryhq/textcore/pkg/lexical"
	"github.com/quarryhq/textcore/pkg/termdict"
)

// ============================================================================
// Configuration
// ============================================================================

// SignalWeights controls how much each signal contributes to the
// combined score.
type SignalWeights struct {
	TopicShift      float64 `json:"topicShift"`
	EntityDensity   float64 `json:"entityDensity"`
	SemanticNovelty float64 `json:"semanticNovelty"`
}

// Config holds worthiness scoring parameters. Weights are applied as
// given; the defaults sum to 1.0.
type Config struct {
	Weights          SignalWeights `json:"worthinessWeights"`
	Threshold        float64       `json:"blockWorthinessThreshold"`
	MinContentLength int           `json:"minContentLength"`
}

// DefaultConfig returns the standard worthiness parameters.
func DefaultConfig() Config {
	return Config{
		Weights: SignalWeights{
			TopicShift:      0.4,
			EntityDensity:   0.3,
			SemanticNovelty: 0.3,
		},
		Threshold:        0.5,
		MinContentLength: 50,
	}
}

// Signals holds the raw signal values, each in [0,1].
type Signals struct {
	TopicShift      float64 `json:"topicShift"`
	EntityDensity   float64 `json:"entityDensity"`
	SemanticNovelty float64 `json:"semanticNovelty"`
}

// Result is the worthiness verdict for one block.
type Result struct {
	Score     float64 `json:"score"`
	Signals   Signals `json:"signals"`
	Worthy    bool    `json:"worthy"`
	Reasoning string  `json:"reasoning"`
}

// Context carries the document-level surroundings a block is judged
// against. Surrounding holds the other blocks' contents in document
// order. Provider is optional; without one, novelty uses the lexical
// path for every comparison.
type Context struct {
	DocumentContent string
	DocumentTags    []string
	Surrounding     []string
	Provider        embedding.Provider
}

// Engine evaluates blocks against their document.
type Engine struct {
	cfg  Config
	dict *termdict.Dictionary
}

// NewEngine returns an engine with the given configuration. A nil
// dictionary falls back to the built-in one.
func NewEngine(cfg Config, dict *termdict.Dictionary) *Engine {
	if dict == nil {
		dict = termdict.Default()
	}
	return &Engine{cfg: cfg, dict: dict}
}

// ============================================================================
// Signals
// ============================================================================

const (
	minTopicShiftRunes = 20
	minDensityWords    = 5
	minNoveltyRunes    = 30
)

// TopicShift measures how far a block's salient terms diverge from the
// document's declared tags and overall vocabulary. Near-empty content
// scores 0; a document with no tags and no content to compare against
// scores a neutral 0.5.
func (e *Engine) TopicShift(content string, docTags []string, docContent string) float64 {
	if utf8.RuneCountInString(content) < minTopicShiftRunes {
		return 0
	}

	terms := e.salientTerms(content)
	if len(terms) == 0 {
		return 0
	}

	docTerms := make(map[string]bool)
	for _, tag := range docTags {
		if key := foldTag(tag); key != "" {
			docTerms[key] = true
		}
	}
	for _, t := range e.salientTerms(docContent) {
		docTerms[t] = true
	}
	if len(docTerms) == 0 {
		return 0.5
	}

	matched := 0
	for _, t := range terms {
		if docTerms[t] {
			matched++
		}
	}
	return clamp01(1 - float64(matched)/float64(len(terms)))
}

// salientTerms returns the deduplicated stopword-filtered tokens of
// text plus every dictionary term the scanner finds in it, all folded
// to the tag-matching key.
func (e *Engine) salientTerms(text string) []string {
	seen := make(map[string]bool)
	terms := make([]string, 0, 16)

	for _, tok := range termdict.TokenizeNorm(text) {
		if !seen[tok] {
			seen[tok] = true
			terms = append(terms, tok)
		}
	}
	for _, m := range e.dict.Scan(text) {
		key := foldTag(m.Term)
		if key != "" && !seen[key] {
			seen[key] = true
			terms = append(terms, key)
		}
	}
	return terms
}

// foldTag canonicalizes a tag for matching: case, hyphens, underscores
// and spaces are all insignificant.
func foldTag(s string) string {
	return strings.ReplaceAll(termdict.NormalizeTerm(s), " ", "")
}

// EntityDensity is the share of entity-like words in the block. Blocks
// under five words carry too little signal and score 0.
func (e *Engine) EntityDensity(content string) float64 {
	if len(strings.Fields(content)) < minDensityWords {
		return 0
	}
	return e.dict.EntityDensity(content)
}

// SemanticNovelty is 1 minus the mean similarity between the block and
// its valid surrounding blocks. Each comparison uses embedding cosine
// when the provider returns a usable vector and word-bigram Jaccard
// otherwise, so a flaky provider degrades per pair instead of failing
// the signal.
func (e *Engine) SemanticNovelty(ctx context.Context, content string, surrounding []string, p embedding.Provider) float64 {
	if utf8.RuneCountInString(content) < minNoveltyRunes {
		return 0
	}

	valid := make([]string, 0, len(surrounding))
	for _, s := range surrounding {
		if utf8.RuneCountInString(s) >= minNoveltyRunes {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return 0.5
	}

	var base []float32
	if p != nil {
		if v, err := p.Embed(ctx, content); err == nil && len(v) > 0 {
			base = v
		}
	}

	total := 0.0
	for _, other := range valid {
		sim, ok := 0.0, false
		if base != nil {
			if v, err := p.Embed(ctx, other); err == nil && len(v) > 0 {
				sim, ok = embedding.CosineSimilarity(base, v), true
			}
		}
		if !ok {
			sim = lexical.WordNgramJaccard(content, other, 2)
		}
		total += sim
	}
	return clamp01(1 - total/float64(len(valid)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ============================================================================
// Evaluation
// ============================================================================

// Evaluate scores one block against its document context.
func (e *Engine) Evaluate(ctx context.Context, block doc.Block, ectx Context) Result {
	if block.Type == doc.BlockTable || block.Type == doc.BlockHTML {
		return Result{Reasoning: fmt.Sprintf("%s blocks are not extracted", block.Type)}
	}
	if utf8.RuneCountInString(block.Content) < e.cfg.MinContentLength {
		return Result{Reasoning: "content too short"}
	}

	sig := Signals{
		TopicShift:      e.TopicShift(block.Content, ectx.DocumentTags, ectx.DocumentContent),
		EntityDensity:   e.EntityDensity(block.Content),
		SemanticNovelty: e.SemanticNovelty(ctx, block.Content, ectx.Surrounding, ectx.Provider),
	}
	score := sig.TopicShift*e.cfg.Weights.TopicShift +
		sig.EntityDensity*e.cfg.Weights.EntityDensity +
		sig.SemanticNovelty*e.cfg.Weights.SemanticNovelty

	return Result{
		Score:     score,
		Signals:   sig,
		Worthy:    score >= e.cfg.Threshold,
		Reasoning: describeSignals(sig),
	}
}

// describeSignals names the signals strong enough to drive the verdict.
func describeSignals(sig Signals) string {
	parts := make([]string, 0, 3)
	if sig.TopicShift >= 0.5 {
		parts = append(parts, "shifts topic from the document")
	}
	if sig.EntityDensity >= 0.5 {
		parts = append(parts, "high entity density")
	}
	if sig.SemanticNovelty >= 0.5 {
		parts = append(parts, "novel against neighbors")
	}
	if len(parts) == 0 {
		return "no dominant signal"
	}
	return strings.Join(parts, "; ")
}

// EvaluateAll scores every block, supplying each one the other blocks'
// contents as its surroundings. Novelty runs on the lexical path here;
// callers that want embeddings evaluate per block with an explicit
// Context.
func (e *Engine) EvaluateAll(ctx context.Context, blocks []doc.Block, docContent string, docTags []string) map[string]Result {
	results := make(map[string]Result, len(blocks))
	for i, b := range blocks {
		surrounding := make([]string, 0, len(blocks)-1)
		for j, other := range blocks {
			if j != i {
				surrounding = append(surrounding, other.Content)
			}
		}
		results[b.ID] = e.Evaluate(ctx, b, Context{
			DocumentContent: docContent,
			DocumentTags:    docTags,
			Surrounding:     surrounding,
		})
	}
	return results
}

// FilterWorthy keeps the worthy blocks in their original order. Blocks
// absent from results are treated as not worthy.
func FilterWorthy(blocks []doc.Block, results map[string]Result) []doc.Block {
	kept := make([]doc.Block, 0, len(blocks))
	for _, b := range blocks {
		if r, ok := results[b.ID]; ok && r.Worthy {
			kept = append(kept, b)
		}
	}
	return kept
}
