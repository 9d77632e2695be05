package textrank

import (
	"github.com/quarryhq/textcore/pkg/termdict"
)

// applyBoosts layers position and entity boosts over the base TextRank
// scores. Earlier sentences get a larger position factor, sentences
// dense in technical entities a larger entity factor. Zero weights
// reproduce the base scores unchanged.
func applyBoosts(sentences []string, base []float64, cfg Config, dict *termdict.Dictionary) []SentenceScore {
	n := len(sentences)
	out := make([]SentenceScore, n)

	for i, text := range sentences {
		position := 1 - float64(i)/float64(n)
		density := dict.EntityDensity(text)

		out[i] = SentenceScore{
			Text:          text,
			Index:         i,
			Score:         base[i] + position*cfg.PositionWeight + density*cfg.EntityWeight,
			Position:      position,
			EntityDensity: density,
		}
	}
	return out
}
