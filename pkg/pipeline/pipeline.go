// Package pipeline composes the analysis passes over one document:
// counts, extractive summary, per-block worthiness and tag bubbling.
// It adds no behavior of its own.
package pipeline

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/quarryhq/textcore/pkg/doc"
	"github.com/quarryhq/textcore/pkg/embedding"
	"github.com/quarryhq/textcore/pkg/sentence"
	"github.com/quarryhq/textcore/pkg/tagbubble"
	"github.com/quarryhq/textcore/pkg/termdict"
	"github.com/quarryhq/textcore/pkg/textrank"
	"github.com/quarryhq/textcore/pkg/worthiness"
)

const wordsPerMinute = 250

// Report is the combined outcome of one document analysis.
type Report struct {
	WordCount      int                          `json:"wordCount"`
	CharCount      int                          `json:"charCount"`
	SentenceCount  int                          `json:"sentenceCount"`
	ReadingTimeMin float64                      `json:"readingTimeMin"`
	Summary        textrank.Summary             `json:"summary"`
	Worthiness     map[string]worthiness.Result `json:"worthiness"`
	WorthyBlockIDs []string                     `json:"worthyBlockIds"`
	Bubbling       tagbubble.Result             `json:"bubbling"`
}

// Analyzer runs every pass with one shared dictionary. The embedding
// provider feeds the summary pass; block worthiness compares neighbors
// lexically.
type Analyzer struct {
	rankCfg   textrank.Config
	worthCfg  worthiness.Config
	bubbleCfg tagbubble.Config
	dict      *termdict.Dictionary
	provider  embedding.Provider
}

// NewAnalyzer wires the passes together. A nil dict falls back to the
// built-in lexicon; a nil provider keeps the summary on its TF-IDF
// path.
func NewAnalyzer(rankCfg textrank.Config, worthCfg worthiness.Config, bubbleCfg tagbubble.Config, dict *termdict.Dictionary, p embedding.Provider) *Analyzer {
	if dict == nil {
		dict = termdict.Default()
	}
	return &Analyzer{
		rankCfg:   rankCfg,
		worthCfg:  worthCfg,
		bubbleCfg: bubbleCfg,
		dict:      dict,
		provider:  p,
	}
}

// Analyze produces the full report for a document.
func (a *Analyzer) Analyze(ctx context.Context, d doc.Document) Report {
	words := len(strings.Fields(d.Content))

	summary := textrank.NewExtractor(a.rankCfg, a.dict, a.provider).Extract(ctx, d.Content)

	engine := worthiness.NewEngine(a.worthCfg, a.dict)
	results := engine.EvaluateAll(ctx, d.Blocks, d.Content, d.Tags)

	worthy := worthiness.FilterWorthy(d.Blocks, results)
	ids := make([]string, len(worthy))
	for i, b := range worthy {
		ids[i] = b.ID
	}

	return Report{
		WordCount:      words,
		CharCount:      utf8.RuneCountInString(d.Content),
		SentenceCount:  len(sentence.Tokenize(d.Content)),
		ReadingTimeMin: float64(words) / wordsPerMinute,
		Summary:        summary,
		Worthiness:     results,
		WorthyBlockIDs: ids,
		Bubbling:       tagbubble.Process(d.Blocks, d.Tags, a.bubbleCfg),
	}
}
