package bm25

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/lexgo/index"
	"github.com/hupe1980/lexgo/tokenizer"
)

const (
	// DefaultK1 is the default term-frequency saturation parameter.
	DefaultK1 = 1.5
	// DefaultB is the default document-length normalization parameter.
	DefaultB = 0.75
)

// ScoredDoc is one ranked result: a document ID and its BM25 score.
type ScoredDoc struct {
	DocID uint64
	Score float64
}

// Options configure a Ranker.
type Options struct {
	// K1 controls term-frequency saturation.
	K1 float64
	// B controls document-length normalization.
	B float64
}

// Ranker maintains corpus statistics and computes BM25 relevance scores.
// The corpus is append-only: documents are indexed, never removed.
type Ranker struct {
	tokenizer *tokenizer.Tokenizer
	index     *index.Index

	docLengths  map[uint64]int
	totalLength int64
	docCount    int

	k1 float64
	b  float64
}

// New creates a Ranker over tok and idx. Both must use the same language
// profile; the ranker tokenizes documents independently of the index to
// track lengths.
func New(tok *tokenizer.Tokenizer, idx *index.Index, optFns ...func(o *Options)) *Ranker {
	opts := Options{
		K1: DefaultK1,
		B:  DefaultB,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Ranker{
		tokenizer:  tok,
		index:      idx,
		docLengths: make(map[uint64]int),
		k1:         opts.K1,
		b:          opts.B,
	}
}

// IndexDocument records the document's length statistics and delegates
// posting construction to the inverted index. Indexing the same ID twice
// is a caller error the ranker does not detect.
func (r *Ranker) IndexDocument(docID uint64, text string) {
	length := len(r.tokenizer.Tokenize(text))

	r.docLengths[docID] = length
	r.totalLength += int64(length)
	r.docCount++

	r.index.IndexDocument(docID, text)
}

// Rank scores every document matching at least one query term and returns
// them ordered by score descending; equal scores order by ascending
// document ID. Repeated query words collapse to a distinct term set and do
// not add weight. An empty or unmatched query returns an empty result.
func (r *Ranker) Rank(query string) []ScoredDoc {
	terms := r.queryTerms(query)
	if len(terms) == 0 || r.docCount == 0 {
		return nil
	}

	// Candidate set: union of the doc sets of all query terms. Documents
	// matching no term never appear, not even with a zero score.
	type termStats struct {
		idf float64
		tf  map[uint64]int
	}

	candidates := roaring64.New()
	stats := make([]termStats, 0, len(terms))

	for _, term := range terms {
		pl, ok := r.index.GetPostings(term)
		if !ok {
			continue
		}

		tf := make(map[uint64]int, len(pl))
		for _, p := range pl {
			tf[p.DocID] = len(p.Positions)
		}

		candidates.Or(r.index.DocSet(term))
		stats = append(stats, termStats{
			idf: r.idf(len(pl)),
			tf:  tf,
		})
	}

	if candidates.IsEmpty() {
		return nil
	}

	avgDocLen := float64(r.totalLength) / float64(r.docCount)

	k1Plus1 := r.k1 + 1
	k1OneMinusB := r.k1 * (1 - r.b)
	k1BOverAvg := r.k1 * r.b / avgDocLen

	results := make([]ScoredDoc, 0, candidates.GetCardinality())

	it := candidates.Iterator()
	for it.HasNext() {
		docID := it.Next()

		// Zero-length documents never rank; the guard also keeps the
		// normalization term well-defined.
		docLen := float64(r.docLengths[docID])
		if docLen == 0 {
			continue
		}

		var score float64
		for _, ts := range stats {
			tf, ok := ts.tf[docID]
			if !ok {
				continue
			}

			f := float64(tf)
			score += ts.idf * (f * k1Plus1) / (f + k1OneMinusB + k1BOverAvg*docLen)
		}

		// Extremely common terms can drive IDF toward zero; documents
		// that end up non-positive are dropped, not returned low.
		if score > 0 {
			results = append(results, ScoredDoc{DocID: docID, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	return results
}

// queryTerms tokenizes the query and collapses it to the distinct stemmed
// terms in first-appearance order.
func (r *Ranker) queryTerms(query string) []string {
	tokens := r.tokenizer.Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tokens))
	terms := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if _, ok := seen[tok.Term]; ok {
			continue
		}
		seen[tok.Term] = struct{}{}
		terms = append(terms, tok.Term)
	}

	return terms
}

// idf computes the +1-smoothed inverse document frequency for a term
// contained in df distinct documents.
func (r *Ranker) idf(df int) float64 {
	n := float64(r.docCount)
	d := float64(df)
	return math.Log((n-d+0.5)/(d+0.5) + 1)
}

// DocCount returns the number of indexed documents.
func (r *Ranker) DocCount() int {
	return r.docCount
}

// DocLength returns the recorded token count for a document; zero when the
// document was never indexed.
func (r *Ranker) DocLength(docID uint64) int {
	return r.docLengths[docID]
}

// AvgDocLength returns the average document length, derived from the
// running sum on every read. It is zero for an empty corpus.
func (r *Ranker) AvgDocLength() float64 {
	if r.docCount == 0 {
		return 0
	}
	return float64(r.totalLength) / float64(r.docCount)
}
