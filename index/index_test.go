package index

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexgo/tokenizer"
)

func TestIndex_Postings(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	idx.IndexDocument(1, "The quick fox jumps")
	idx.IndexDocument(2, "Fox jumps high")

	pl, ok := idx.GetPostings("fox")
	require.True(t, ok)
	require.Len(t, pl, 2)

	assert.Equal(t, uint64(1), pl[0].DocID)
	assert.Equal(t, []int{1}, pl[0].Positions)
	assert.Equal(t, []tokenizer.Offset{{Start: 10, End: 13}}, pl[0].Offsets)

	assert.Equal(t, uint64(2), pl[1].DocID)
	assert.Equal(t, []int{0}, pl[1].Positions)
	assert.Equal(t, []tokenizer.Offset{{Start: 0, End: 3}}, pl[1].Offsets)
}

func TestIndex_UnknownTerm(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	idx.IndexDocument(1, "The quick fox jumps")

	pl, ok := idx.GetPostings("turtle")
	assert.False(t, ok)
	assert.Nil(t, pl)
	assert.Nil(t, idx.DocSet("turtle"))
}

func TestIndex_RepeatedTerm(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	idx.IndexDocument(7, "fox fox jumps fox")

	pl, ok := idx.GetPostings("fox")
	require.True(t, ok)
	require.Len(t, pl, 1)

	assert.Equal(t, uint64(7), pl[0].DocID)
	assert.Equal(t, []int{0, 1, 3}, pl[0].Positions)
	assert.Equal(t, []tokenizer.Offset{
		{Start: 0, End: 3},
		{Start: 4, End: 7},
		{Start: 14, End: 17},
	}, pl[0].Offsets)
}

func TestIndex_IdenticalTextDiffersOnlyByDocID(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	const text = "The quick brown fox jumps over the lazy dog"
	idx.IndexDocument(1, text)
	idx.IndexDocument(2, text)

	for term := range idx.Terms() {
		pl, ok := idx.GetPostings(term)
		require.True(t, ok)
		require.Len(t, pl, 2)

		assert.Equal(t, uint64(1), pl[0].DocID)
		assert.Equal(t, uint64(2), pl[1].DocID)
		assert.Equal(t, pl[0].Positions, pl[1].Positions)
		assert.Equal(t, pl[0].Offsets, pl[1].Offsets)
	}
}

func TestIndex_EmptyAndStopwordOnlyText(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	idx.IndexDocument(1, "")
	idx.IndexDocument(2, "the and is of")

	assert.Zero(t, idx.Len())
}

func TestIndex_Terms(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	idx.IndexDocument(1, "The quick fox jumps")
	idx.IndexDocument(2, "Fox jumps high")

	var terms []string
	for term := range idx.Terms() {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	assert.Equal(t, []string{"fox", "high", "jump", "quick"}, terms)
	assert.Equal(t, 4, idx.Len())
}

func TestIndex_TermsEarlyStop(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	idx.IndexDocument(1, "quick fox jumps high")

	count := 0
	for range idx.Terms() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestIndex_DocSetMatchesPostings(t *testing.T) {
	idx := New(tokenizer.New(tokenizer.English))

	idx.IndexDocument(1, "The quick fox jumps")
	idx.IndexDocument(2, "Fox jumps high")
	idx.IndexDocument(3, "Slow turtle walks")

	for term := range idx.Terms() {
		pl, ok := idx.GetPostings(term)
		require.True(t, ok)

		set := idx.DocSet(term)
		require.NotNil(t, set)
		require.EqualValues(t, len(pl), set.GetCardinality())

		for _, p := range pl {
			assert.True(t, set.Contains(p.DocID))
		}
	}
}
