// Package bm25 ranks documents against a query with Okapi BM25.
//
// The Ranker owns a tokenizer and a positional inverted index, tracks
// corpus statistics (per-document lengths and their running sum), and
// scores candidate documents with the standard BM25 formula using
// +1-smoothed IDF:
//
//	idf(t)  = ln((N - n_t + 0.5)/(n_t + 0.5) + 1)
//	score   = Σ idf(t) * tf*(k1+1) / (tf + k1*(1 - b + b*docLen/avgDocLen))
//
// # Parameters
//
// k1 (term-frequency saturation) defaults to 1.5 and b (length
// normalization) defaults to 0.75; both are configurable via options.
//
// # Thread safety
//
// The ranker performs no locking. Callers must serialize writers and keep
// Rank calls from overlapping an in-flight IndexDocument.
package bm25
