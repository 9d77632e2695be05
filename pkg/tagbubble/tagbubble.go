// Package tagbubble promotes tags that recur across a document's blocks
// up to the document itself. Block membership per tag is tracked with
// roaring bitmaps keyed by normalized tag, so a block counts once no
// matter how often it repeats a tag.
package tagbubble

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/quarryhq/textcore/pkg/doc"
	"github.com/quarryhq/textcore/pkg/termdict"
)

// ============================================================================
// Configuration
// ============================================================================

// Config holds bubbling parameters.
type Config struct {
	Enabled             bool     `json:"enabled"`
	Threshold           int      `json:"threshold"`
	MinConfidence       float64  `json:"minConfidence"`
	MaxTags             int      `json:"maxBubbledTags"`
	ExcludeDocumentTags []string `json:"excludeDocumentTags,omitempty"`
}

// DefaultConfig returns the standard bubbling parameters.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		Threshold:     3,
		MinConfidence: 0.5,
		MaxTags:       5,
	}
}

// BubbledTag is one tag promoted from blocks to the document.
type BubbledTag struct {
	Tag          string   `json:"tag"`
	BlockCount   int      `json:"blockCount"`
	Confidence   float64  `json:"confidence"`
	SourceBlocks []string `json:"sourceBlocks"`
	Reasoning    string   `json:"reasoning"`
}

// Stats summarizes the tag landscape of a document's blocks.
type Stats struct {
	TotalBlockTags         int `json:"totalBlockTags"`
	UniqueBlockTags        int `json:"uniqueBlockTags"`
	Candidates             int `json:"candidatesForBubbling"`
	AlreadyAtDocumentLevel int `json:"alreadyAtDocLevel"`
}

// Result is the outcome of one bubbling pass.
type Result struct {
	Applied      bool         `json:"applied"`
	BubbledTags  []BubbledTag `json:"bubbledTags,omitempty"`
	DocumentTags []string     `json:"updatedDocumentTags"`
}

// ============================================================================
// Aggregation
// ============================================================================

// tagTally accumulates one tag's block membership and confidence mass.
type tagTally struct {
	display string
	blocks  *roaring.Bitmap
	confSum float64
}

// Aggregate tallies tags across blocks and returns the ones recurring
// often enough to describe the whole document. Accepted tags count with
// full confidence; suggested tags count with their own confidence when
// it clears cfg.MinConfidence. A block contributes one hit per tag, and
// an accepted tag wins over a suggested duplicate in the same block.
// Results sort by block count, then confidence, then tag; MaxTags > 0
// caps the list.
func Aggregate(blocks []doc.Block, cfg Config) []BubbledTag {
	excluded := make(map[string]bool, len(cfg.ExcludeDocumentTags))
	for _, t := range cfg.ExcludeDocumentTags {
		excluded[termdict.NormalizeTerm(t)] = true
	}

	tallies := make(map[string]*tagTally)
	record := func(blockIdx int, tag string, conf float64) {
		key := termdict.NormalizeTerm(tag)
		if key == "" || excluded[key] {
			return
		}
		tl := tallies[key]
		if tl == nil {
			tl = &tagTally{display: strings.TrimSpace(tag), blocks: roaring.New()}
			tallies[key] = tl
		}
		if tl.blocks.Contains(uint32(blockIdx)) {
			return
		}
		tl.blocks.Add(uint32(blockIdx))
		tl.confSum += conf
	}

	for i, b := range blocks {
		for _, tag := range b.Tags {
			record(i, tag, 1.0)
		}
		for _, st := range b.SuggestedTags {
			if st.Confidence >= cfg.MinConfidence {
				record(i, st.Tag, st.Confidence)
			}
		}
	}

	type candidate struct {
		key string
		tag BubbledTag
	}
	cands := make([]candidate, 0, len(tallies))
	for key, tl := range tallies {
		n := int(tl.blocks.GetCardinality())
		if n < cfg.Threshold {
			continue
		}
		ids := make([]string, 0, n)
		it := tl.blocks.Iterator()
		for it.HasNext() {
			ids = append(ids, blocks[it.Next()].ID)
		}
		cands = append(cands, candidate{key: key, tag: BubbledTag{
			Tag:          tl.display,
			BlockCount:   n,
			Confidence:   tl.confSum / float64(n),
			SourceBlocks: ids,
			Reasoning:    fmt.Sprintf("appears in %d of %d blocks", n, len(blocks)),
		}})
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.tag.BlockCount != b.tag.BlockCount {
			return a.tag.BlockCount > b.tag.BlockCount
		}
		if a.tag.Confidence != b.tag.Confidence {
			return a.tag.Confidence > b.tag.Confidence
		}
		return a.key < b.key
	})
	if cfg.MaxTags > 0 && len(cands) > cfg.MaxTags {
		cands = cands[:cfg.MaxTags]
	}

	out := make([]BubbledTag, len(cands))
	for i, c := range cands {
		out[i] = c.tag
	}
	return out
}

// ============================================================================
// Application
// ============================================================================

// Apply returns documentTags extended with the bubbled tags not already
// present. Matching is normalized (case, hyphens and spaces are
// insignificant); existing casing wins and the input is never mutated.
func Apply(documentTags []string, bubbled []BubbledTag) []string {
	out := make([]string, 0, len(documentTags)+len(bubbled))
	out = append(out, documentTags...)

	seen := make(map[string]bool, len(documentTags))
	for _, t := range documentTags {
		seen[termdict.NormalizeTerm(t)] = true
	}
	for _, bt := range bubbled {
		key := termdict.NormalizeTerm(bt.Tag)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, bt.Tag)
	}
	return out
}

// ShouldBubble reports whether a single tag recurs in at least
// threshold blocks. Suggested tags count at or above the default
// confidence floor.
func ShouldBubble(tag string, blocks []doc.Block, threshold int) bool {
	key := termdict.NormalizeTerm(tag)
	if key == "" {
		return false
	}
	minConf := DefaultConfig().MinConfidence

	count := 0
	for _, b := range blocks {
		if blockHasTag(b, key, minConf) {
			count++
		}
	}
	return count >= threshold
}

func blockHasTag(b doc.Block, key string, minConf float64) bool {
	for _, t := range b.Tags {
		if termdict.NormalizeTerm(t) == key {
			return true
		}
	}
	for _, st := range b.SuggestedTags {
		if st.Confidence >= minConf && termdict.NormalizeTerm(st.Tag) == key {
			return true
		}
	}
	return false
}

// CollectStats reports diagnostic tag counts for a document. Suggested
// tags participate at or above the default confidence floor, and
// candidates exclude tags already present at document level.
func CollectStats(blocks []doc.Block, documentTags []string) Stats {
	docKeys := make(map[string]bool, len(documentTags))
	for _, t := range documentTags {
		docKeys[termdict.NormalizeTerm(t)] = true
	}
	defaults := DefaultConfig()

	var s Stats
	perTag := make(map[string]*roaring.Bitmap)
	note := func(blockIdx int, tag string) {
		key := termdict.NormalizeTerm(tag)
		if key == "" {
			return
		}
		s.TotalBlockTags++
		bm := perTag[key]
		if bm == nil {
			bm = roaring.New()
			perTag[key] = bm
		}
		bm.Add(uint32(blockIdx))
	}

	for i, b := range blocks {
		for _, t := range b.Tags {
			note(i, t)
		}
		for _, st := range b.SuggestedTags {
			if st.Confidence >= defaults.MinConfidence {
				note(i, st.Tag)
			}
		}
	}

	s.UniqueBlockTags = len(perTag)
	for key, bm := range perTag {
		if docKeys[key] {
			s.AlreadyAtDocumentLevel++
			continue
		}
		if int(bm.GetCardinality()) >= defaults.Threshold {
			s.Candidates++
		}
	}
	return s
}

// Process runs one bubbling pass end to end. Disabled bubbling or an
// empty aggregate leaves the document tags untouched.
func Process(blocks []doc.Block, documentTags []string, cfg Config) Result {
	if !cfg.Enabled {
		return Result{DocumentTags: documentTags}
	}
	bubbled := Aggregate(blocks, cfg)
	if len(bubbled) == 0 {
		return Result{DocumentTags: documentTags}
	}
	return Result{
		Applied:      true,
		BubbledTags:  bubbled,
		DocumentTags: Apply(documentTags, bubbled),
	}
}

// FormatResults renders bubbled tags for display, one line per tag.
func FormatResults(bubbled []BubbledTag) string {
	if len(bubbled) == 0 {
		return "No tags bubbled up to document level"
	}
	lines := make([]string, len(bubbled))
	for i, bt := range bubbled {
		lines[i] = fmt.Sprintf("#%s: %d blocks (%.0f%% confidence)", bt.Tag, bt.BlockCount, bt.Confidence*100)
	}
	return strings.Join(lines, "\n")
}
