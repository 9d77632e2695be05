package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/textcore/pkg/similarity"
)

func TestSuggestLexical(t *testing.T) {
	ix := New(2, similarity.DefaultConfig())
	for _, term := range []string{"framework", "frameworks", "framewrk", "banana"} {
		require.NoError(t, ix.Add(term, nil))
	}

	got := ix.Suggest("framework", nil, 5)

	require.Len(t, got, 2)
	assert.Equal(t, "frameworks", got[0].Term)
	assert.InDelta(t, 0.95, got[0].Score, 1e-9)
	assert.Equal(t, SourceLexical, got[0].Source)
	assert.Equal(t, "framewrk", got[1].Term)
	assert.InDelta(t, 8.0/9.0, got[1].Score, 1e-9)
}

func TestSuggestVector(t *testing.T) {
	ix := New(2, similarity.DefaultConfig())
	require.NoError(t, ix.Add("alpha", []float32{1, 0}))
	require.NoError(t, ix.Add("beta", []float32{0, 1}))

	got := ix.Suggest("zzzz", []float32{1, 0}, 5)

	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Term)
	assert.InDelta(t, 1.0, got[0].Score, 1e-6)
	assert.Equal(t, SourceVector, got[0].Source)
	assert.Equal(t, "beta", got[1].Term)
	assert.InDelta(t, 0.5, got[1].Score, 1e-6)
}

func TestSuggestMergesBothSides(t *testing.T) {
	ix := New(2, similarity.DefaultConfig())
	require.NoError(t, ix.Add("gopher", []float32{1, 0}))

	got := ix.Suggest("gophers", []float32{1, 0}, 5)

	require.Len(t, got, 1)
	assert.Equal(t, "gopher", got[0].Term)
	assert.Equal(t, SourceBoth, got[0].Source)
	assert.InDelta(t, 1.0, got[0].Score, 1e-6, "keeps the higher of the two scores")
}

func TestSuggestSkipsSelf(t *testing.T) {
	ix := New(2, similarity.DefaultConfig())
	require.NoError(t, ix.Add("alpha", []float32{1, 0}))

	assert.Empty(t, ix.Suggest("alpha", []float32{1, 0}, 5))
	assert.Empty(t, ix.Suggest("Alpha", []float32{1, 0}, 5), "self match is case-insensitive")
}

func TestSuggestLimit(t *testing.T) {
	ix := New(2, similarity.DefaultConfig())
	for _, term := range []string{"framework", "frameworks", "framewrk"} {
		require.NoError(t, ix.Add(term, nil))
	}

	got := ix.Suggest("framework", nil, 1)

	require.Len(t, got, 1)
	assert.Equal(t, "frameworks", got[0].Term)

	assert.Nil(t, ix.Suggest("framework", nil, 0))
}

func TestAddDimensionMismatch(t *testing.T) {
	ix := New(2, similarity.DefaultConfig())

	err := ix.Add("alpha", []float32{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")

	assert.NoError(t, ix.Add("alpha", nil), "lexical-only registration carries no dimension")
}

func TestAddIdempotent(t *testing.T) {
	ix := New(2, similarity.DefaultConfig())
	require.NoError(t, ix.Add("alpha", nil))
	require.NoError(t, ix.Add("alpha", nil))
	assert.Equal(t, 1, ix.Len())

	// A vector can attach to a previously lexical-only term.
	require.NoError(t, ix.Add("alpha", []float32{1, 0}))
	got := ix.Suggest("zzzz", []float32{1, 0}, 5)
	require.Len(t, got, 1)
	assert.Equal(t, SourceVector, got[0].Source)
}
