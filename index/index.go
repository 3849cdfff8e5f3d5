package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/lexgo/tokenizer"
)

// Posting is one document's occurrence record for one term. Positions and
// Offsets are parallel slices in ascending emission order. Positions are
// token positions as emitted by the tokenizer for that document, not
// global positions in the raw token stream.
type Posting struct {
	DocID     uint64
	Positions []int
	Offsets   []tokenizer.Offset
}

// PostingsList holds all postings for a single term, ordered by the order
// in which documents were indexed. No relevance order is implied.
type PostingsList []Posting

// Index is a positional inverted index. It grows monotonically via
// IndexDocument; there is no removal, update, or compaction.
//
// Indexing the same document ID twice appends a duplicate posting. The
// index does not detect or correct this; callers must not do it.
type Index struct {
	tokenizer *tokenizer.Tokenizer
	postings  map[string]PostingsList
	docSets   map[string]*roaring64.Bitmap
}

// New creates an empty index that tokenizes documents with tok.
func New(tok *tokenizer.Tokenizer) *Index {
	return &Index{
		tokenizer: tok,
		postings:  make(map[string]PostingsList),
		docSets:   make(map[string]*roaring64.Bitmap),
	}
}

// IndexDocument tokenizes text and appends one posting per distinct term.
// Empty or all-stopword text adds no postings.
func (idx *Index) IndexDocument(docID uint64, text string) {
	tokens := idx.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return
	}

	// Group occurrences by term, keeping first-emission order so posting
	// positions come out ascending.
	grouped := make(map[string]*Posting, len(tokens))
	order := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		p, ok := grouped[tok.Term]
		if !ok {
			p = &Posting{DocID: docID}
			grouped[tok.Term] = p
			order = append(order, tok.Term)
		}
		p.Positions = append(p.Positions, tok.Position)
		p.Offsets = append(p.Offsets, tok.Offset)
	}

	for _, term := range order {
		idx.postings[term] = append(idx.postings[term], *grouped[term])

		set, ok := idx.docSets[term]
		if !ok {
			set = roaring64.New()
			idx.docSets[term] = set
		}
		set.Add(docID)
	}
}

// GetPostings returns the postings list for term. The second return value
// is false when the term was never indexed. The returned slice is shared
// with the index and must not be mutated.
func (idx *Index) GetPostings(term string) (PostingsList, bool) {
	pl, ok := idx.postings[term]
	return pl, ok
}

// DocSet returns the set of document IDs containing term, or nil when the
// term was never indexed. The returned bitmap is shared with the index and
// must not be mutated.
func (idx *Index) DocSet(term string) *roaring64.Bitmap {
	return idx.docSets[term]
}

// Terms enumerates the vocabulary lazily. Iteration order is unspecified.
func (idx *Index) Terms() iter.Seq[string] {
	return func(yield func(string) bool) {
		for term := range idx.postings {
			if !yield(term) {
				return
			}
		}
	}
}

// Len returns the number of distinct terms in the index.
func (idx *Index) Len() int {
	return len(idx.postings)
}
