package textrank

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/quarryhq/textcore/pkg/embedding"
	"github.com/quarryhq/textcore/pkg/sentence"
	"github.com/quarryhq/textcore/pkg/termdict"
)

// Extractor produces extractive summaries.
type Extractor struct {
	Config   Config
	Dict     *termdict.Dictionary
	Provider embedding.Provider
}

// NewExtractor builds an Extractor. A nil dict falls back to the
// built-in lexicon; a nil provider disables embeddings.
func NewExtractor(cfg Config, dict *termdict.Dictionary, p embedding.Provider) *Extractor {
	if dict == nil {
		dict = termdict.Default()
	}
	return &Extractor{Config: cfg, Dict: dict, Provider: p}
}

// Extract summarizes text. Empty or prose-free text yields a zero
// Summary; a single valid sentence is returned as-is, never truncated.
// Otherwise sentences are ranked, the best are taken while the summary
// stays within Config.MaxSummaryLength (the top sentence is always
// taken), and the selection is re-joined in document order. Extract
// never fails: embedding trouble degrades the method to tfidf.
func (e *Extractor) Extract(ctx context.Context, text string) Summary {
	var sentences []string
	for _, s := range sentence.Tokenize(text) {
		if sentence.IsValid(s, sentence.DefaultMinWords) {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return Summary{Method: MethodTFIDF}
	}
	if len(sentences) == 1 {
		only := SentenceScore{
			Text:          sentences[0],
			Index:         0,
			Score:         1.0,
			Position:      1.0,
			EntityDensity: e.Dict.EntityDensity(sentences[0]),
		}
		return Summary{
			Summary:   sentences[0],
			Sentences: []SentenceScore{only},
			Method:    MethodTFIDF,
		}
	}

	g, method := BuildGraph(ctx, sentences, e.Config, e.Provider)
	base := Rank(g, len(sentences), e.Config)
	scored := applyBoosts(sentences, base, e.Config, e.Dict)

	selected := selectByBudget(scored, e.Config.MaxSummaryLength)
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Index < selected[j].Index
	})

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.Text
	}
	return Summary{
		Summary:   strings.Join(parts, " "),
		Sentences: selected,
		Method:    method,
	}
}

// selectByBudget takes sentences by score descending while the joined
// length stays within budget and stops at the first overflow. The top
// sentence is always taken, so non-empty input never yields an empty
// summary. Equal scores keep document order.
func selectByBudget(scored []SentenceScore, budget int) []SentenceScore {
	ranked := make([]SentenceScore, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var selected []SentenceScore
	total := 0
	for _, s := range ranked {
		add := utf8.RuneCountInString(s.Text)
		if len(selected) > 0 {
			add++
			if total+add > budget {
				break
			}
		}
		selected = append(selected, s)
		total += add
	}
	return selected
}
