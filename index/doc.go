// Package index implements a positional inverted index over a document
// corpus.
//
// The index maps every term to its postings list: one posting per
// (term, document) pair holding the positions and byte offsets of the
// term's occurrences in that document. Alongside the postings it keeps a
// roaring bitmap of document IDs per term, which rankers use to build
// candidate sets cheaply.
//
// The index is append-only: documents are added, never updated or
// removed. It performs no locking; callers must serialize writers and
// keep reads from overlapping an in-flight write.
package index
