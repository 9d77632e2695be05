package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_Exact(t *testing.T) {
	r := Score("Framework", "framework")
	assert.Equal(t, 1.0, r.Score)
	assert.Equal(t, MethodExact, r.Method)

	r = Score("machine   learning", "machine learning")
	assert.Equal(t, MethodExact, r.Method)
}

func TestScore_Acronym(t *testing.T) {
	r := Score("AI", "artificial-intelligence")
	assert.Equal(t, 0.95, r.Score)
	assert.Equal(t, MethodAcronym, r.Method)

	r = Score("artificial intelligence", "ai")
	assert.Equal(t, MethodAcronym, r.Method)

	// dotted and plain spellings of one acronym are not normalized-equal,
	// so they land on the acronym tier rather than exact
	r = Score("A.I.", "ai")
	assert.Equal(t, 0.95, r.Score)
	assert.Equal(t, MethodAcronym, r.Method)
}

func TestScore_Plural(t *testing.T) {
	r := Score("framework", "frameworks")
	assert.Equal(t, 0.95, r.Score)
	assert.Equal(t, MethodPlural, r.Method)

	r = Score("libraries", "library")
	assert.Equal(t, MethodPlural, r.Method)
}

func TestScore_Compound(t *testing.T) {
	r := Score("XMLHttpRequest", "xml-http-request")
	assert.Equal(t, 0.9, r.Score)
	assert.Equal(t, MethodCompound, r.Method)

	r = Score("machine learning", "machine-learning")
	assert.Equal(t, MethodCompound, r.Method)
}

func TestScore_Levenshtein(t *testing.T) {
	r := Score("kubernetes", "kubernets")
	assert.Equal(t, MethodLevenshtein, r.Method)
	assert.InDelta(t, 0.9, r.Score, 1e-9)
}

func TestScore_Phonetic(t *testing.T) {
	// edit distance is too large for the levenshtein tier, metaphone
	// codes still agree
	r := Score("write", "right")
	assert.Equal(t, 0.7, r.Score)
	assert.Equal(t, MethodPhonetic, r.Method)

	r = Score("cat", "kot")
	assert.Equal(t, MethodPhonetic, r.Method)
}

func TestScore_None(t *testing.T) {
	r := Score("apple", "banana")
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, MethodNone, r.Method)

	assert.Equal(t, MethodNone, Score("", "banana").Method)
	assert.Equal(t, MethodNone, Score("  ", "").Method)
}

func TestScore_TierOrder(t *testing.T) {
	// the exact tier shadows the acronym tier for identical spellings
	r := Score("AI", "ai")
	assert.Equal(t, 1.0, r.Score)
	assert.Equal(t, MethodExact, r.Method)
}

func TestAreSimilar(t *testing.T) {
	assert.True(t, AreSimilar("framework", "frameworks", Config{}))
	assert.True(t, AreSimilar("cat", "kot", Config{Threshold: 0.7}))
	assert.False(t, AreSimilar("cat", "kot", Config{Threshold: 0.8}))
	assert.False(t, AreSimilar("apple", "banana", Config{}))
}

func TestRankCandidates(t *testing.T) {
	candidates := []string{"frameworks", "framework", "framewrk", "banana"}
	matches := RankCandidates("framework", candidates, Config{})

	require.Len(t, matches, 3)
	assert.Equal(t, "framework", matches[0].Term)
	assert.Equal(t, MethodExact, matches[0].Method)
	assert.Equal(t, "frameworks", matches[1].Term)
	assert.Equal(t, "framewrk", matches[2].Term)
	assert.Equal(t, MethodLevenshtein, matches[2].Method)
}

func TestRankCandidates_TiesKeepInputOrder(t *testing.T) {
	matches := RankCandidates("ai", []string{"artificial-intelligence", "A.I."}, Config{})

	require.Len(t, matches, 2)
	assert.Equal(t, "artificial-intelligence", matches[0].Term)
	assert.Equal(t, "A.I.", matches[1].Term)
}

func TestRankCandidates_Empty(t *testing.T) {
	assert.Empty(t, RankCandidates("framework", nil, Config{}))
	assert.Empty(t, RankCandidates("framework", []string{"zzz"}, Config{}))
}
