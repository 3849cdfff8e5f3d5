package lexgo

import (
	"context"
	"runtime"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lexgo/bm25"
	"github.com/hupe1980/lexgo/document"
	"github.com/hupe1980/lexgo/index"
	"github.com/hupe1980/lexgo/tokenizer"
)

// Hit is one hydrated search result.
type Hit struct {
	Document document.Document
	Score    float64
}

// SearchResult is the outcome of one search: hydrated hits in rank order,
// the total number of matching documents before the limit was applied,
// and the time the search took.
type SearchResult struct {
	Hits         []Hit
	TotalMatches int
	Took         time.Duration
}

// Stats is a snapshot of corpus statistics.
type Stats struct {
	DocCount     int
	TermCount    int
	AvgDocLength float64
}

// Engine ties the relevance core together for embedding applications: it
// validates input at the boundary, serializes writers behind a single
// read-write lock, stores documents for hydration, and truncates ranked
// results. The underlying tokenizer, index, and ranker perform no locking
// of their own.
type Engine struct {
	mu sync.RWMutex

	tokenizer *tokenizer.Tokenizer
	index     *index.Index
	ranker    *bm25.Ranker
	docs      *document.Store
	parser    document.Parser

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty engine.
func New(optFns ...Option) *Engine {
	opts := options{
		language:  tokenizer.English,
		k1:        bm25.DefaultK1,
		b:         bm25.DefaultB,
		logger:    NoopLogger(),
		collector: NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	tok := tokenizer.New(opts.language)
	idx := index.New(tok)

	return &Engine{
		tokenizer: tok,
		index:     idx,
		ranker: bm25.New(tok, idx, func(o *bm25.Options) {
			o.K1 = opts.k1
			o.B = opts.b
		}),
		docs:    document.NewStore(),
		parser:  &document.PlainTextParser{},
		logger:  opts.logger,
		metrics: opts.collector,
	}
}

// Index validates, stores, and indexes a single document. It returns
// ErrInvalidUTF8 when title or content is not well-formed UTF-8 and
// ErrDuplicateID when the ID is already in the corpus; in both cases the
// engine state is unchanged.
func (e *Engine) Index(ctx context.Context, doc document.Document) error {
	start := time.Now()

	docLength, err := e.indexOne(doc)

	e.metrics.RecordIndex(time.Since(start), err)
	e.logger.LogIndex(ctx, doc.ID, docLength, err)

	return err
}

func (e *Engine) indexOne(doc document.Document) (int, error) {
	if err := validateDocument(doc); err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.docs.Has(doc.ID) {
		return 0, &ErrDuplicateID{DocID: doc.ID}
	}

	e.docs.Set(doc)
	e.ranker.IndexDocument(doc.ID, e.parser.ExtractText(doc))

	return e.ranker.DocLength(doc.ID), nil
}

// BatchIndex indexes multiple documents. Validation runs concurrently;
// indexing itself stays serialized behind the engine's write lock. The
// batch is all-or-nothing: on any validation or duplicate-ID error no
// document from the batch is indexed.
func (e *Engine) BatchIndex(ctx context.Context, docs []document.Document) error {
	start := time.Now()

	err := e.batchIndex(ctx, docs)

	e.metrics.RecordBatchIndex(len(docs), time.Since(start), err)
	e.logger.LogBatchIndex(ctx, len(docs), err)

	return err
}

func (e *Engine) batchIndex(ctx context.Context, docs []document.Document) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, doc := range docs {
		g.Go(func() error {
			return validateDocument(doc)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[uint64]struct{}, len(docs))
	for _, doc := range docs {
		if _, dup := seen[doc.ID]; dup || e.docs.Has(doc.ID) {
			return &ErrDuplicateID{DocID: doc.ID}
		}
		seen[doc.ID] = struct{}{}
	}

	for _, doc := range docs {
		e.docs.Set(doc)
		e.ranker.IndexDocument(doc.ID, e.parser.ExtractText(doc))
	}

	return nil
}

// Search ranks the corpus against query and returns up to limit hydrated
// hits. It returns ErrInvalidUTF8 for malformed queries and
// ErrInvalidLimit when limit is not positive. A query matching nothing
// (including the empty query) yields an empty result, not an error.
func (e *Engine) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	start := time.Now()

	result, err := e.search(query, limit)

	took := time.Since(start)

	hits := 0
	if result != nil {
		result.Took = took
		hits = len(result.Hits)
	}

	e.metrics.RecordSearch(hits, took, err)
	e.logger.LogSearch(ctx, query, limit, hits, took, err)

	return result, err
}

func (e *Engine) search(query string, limit int) (*SearchResult, error) {
	if !utf8.ValidString(query) {
		return nil, ErrInvalidUTF8
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	ranked := e.ranker.Rank(query)

	total := len(ranked)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	hits := make([]Hit, 0, len(ranked))
	for _, sd := range ranked {
		doc, ok := e.docs.Get(sd.DocID)
		if !ok {
			// Postings and store are updated under the same lock, so a
			// ranked ID always resolves; skip rather than fabricate.
			continue
		}
		hits = append(hits, Hit{Document: doc, Score: sd.Score})
	}

	return &SearchResult{
		Hits:         hits,
		TotalMatches: total,
	}, nil
}

// Tokenizer returns the engine's tokenizer, e.g. for highlighting matches
// with the byte offsets it emits. The tokenizer is read-only and safe for
// concurrent use.
func (e *Engine) Tokenizer() *tokenizer.Tokenizer {
	return e.tokenizer
}

// Stats returns a snapshot of corpus statistics.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		DocCount:     e.ranker.DocCount(),
		TermCount:    e.index.Len(),
		AvgDocLength: e.ranker.AvgDocLength(),
	}
}

func validateDocument(doc document.Document) error {
	if !utf8.ValidString(doc.Title) || !utf8.ValidString(doc.Content) {
		return ErrInvalidUTF8
	}
	return nil
}
