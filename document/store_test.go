package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	s := NewStore()

	doc := Document{ID: 1, Title: "Fox", Content: "The quick fox jumps"}
	s.Set(doc)

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, doc, got)

	_, ok = s.Get(2)
	assert.False(t, ok)
}

func TestStore_Has(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Has(1))

	s.Set(Document{ID: 1})
	assert.True(t, s.Has(1))
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()

	s.Set(Document{ID: 1, Title: "one"})

	require.NoError(t, s.Delete(1))
	assert.False(t, s.Has(1))
	assert.Zero(t, s.Len())

	assert.ErrorIs(t, s.Delete(1), ErrNotFound)
	assert.ErrorIs(t, s.Delete(42), ErrNotFound)
}

func TestStore_BatchGet(t *testing.T) {
	s := NewStore()

	s.Set(Document{ID: 1, Title: "one"})
	s.Set(Document{ID: 2, Title: "two"})

	got := s.BatchGet([]uint64{1, 2, 3})

	require.Len(t, got, 2)
	assert.Equal(t, "one", got[1].Title)
	assert.Equal(t, "two", got[2].Title)
}

func TestStore_Len(t *testing.T) {
	s := NewStore()

	assert.Zero(t, s.Len())

	s.Set(Document{ID: 1})
	s.Set(Document{ID: 2})
	s.Set(Document{ID: 2}) // replace, not grow

	assert.Equal(t, 2, s.Len())
}

func TestPlainTextParser_Parse(t *testing.T) {
	p := &PlainTextParser{NextID: 10}

	first, err := p.Parse("some text")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), first.ID)
	assert.Equal(t, "some text", first.Content)

	second, err := p.Parse("more text")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), second.ID)
}

func TestPlainTextParser_ExtractText(t *testing.T) {
	p := &PlainTextParser{}

	assert.Equal(t, "body", p.ExtractText(Document{Content: "body"}))
	assert.Equal(t, "title\nbody", p.ExtractText(Document{Title: "title", Content: "body"}))
}
