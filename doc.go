// Package lexgo provides an embeddable full-text search relevance core
// for Go: stemming-aware tokenization with exact byte-offset recovery, a
// positional inverted index, and Okapi BM25 ranking.
//
// # Quick Start
//
//	engine := lexgo.New()
//
//	_ = engine.Index(ctx, document.Document{ID: 1, Title: "Fox", Content: "The quick fox jumps"})
//	_ = engine.Index(ctx, document.Document{ID: 2, Content: "Fox jumps high"})
//
//	result, _ := engine.Search(ctx, "fox jumps", 10)
//	for _, hit := range result.Hits {
//	    fmt.Println(hit.Document.ID, hit.Score)
//	}
//
// # Layers
//
// The core packages are usable on their own and perform no locking:
//
//   - tokenizer — text to (term, position, byte offset) tokens
//   - index — term to positional postings
//   - bm25 — corpus statistics and BM25 scoring
//
// Engine is the embedding layer: it validates input at the boundary
// (UTF-8, duplicate IDs, limits), serializes writers behind a single
// read-write lock, stores documents for hydration, and truncates ranked
// results to the requested limit.
//
// # Concurrency
//
// The core packages are single-writer by contract: concurrent writes, or
// a read overlapping an in-flight write, are a data race. Engine enforces
// the contract for you; use the core packages directly only if you bring
// your own serialization.
//
// # Ranking
//
// Scores come from Okapi BM25 with +1-smoothed IDF. Repeated query words
// collapse to a distinct term set. Documents matching no query term are
// excluded, as are documents whose score is not positive. Ties order by
// ascending document ID.
package lexgo
