package document

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a document ID is not in the store.
var ErrNotFound = errors.New("document not found")

// Store is an in-memory document store keyed by document ID. It's suitable
// for corpora that fit in memory and provides fast O(1) access.
type Store struct {
	mu   sync.RWMutex
	data map[uint64]Document
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[uint64]Document),
	}
}

// Get retrieves the document with the given ID.
func (s *Store) Get(id uint64) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[id]
	return doc, ok
}

// Has reports whether a document with the given ID is stored.
func (s *Store) Has(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[id]
	return ok
}

// Set stores a document under its ID, replacing any previous value.
func (s *Store) Set(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[doc.ID] = doc
}

// Delete removes the document with the given ID. It returns ErrNotFound
// when the ID is not stored. Deletion only affects the store: the inverted
// index is append-only and keeps the document's postings.
func (s *Store) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return ErrNotFound
	}

	delete(s.data, id)
	return nil
}

// BatchGet retrieves documents for multiple IDs in a single operation.
// Missing IDs are absent from the result.
func (s *Store) BatchGet(ids []uint64) map[uint64]Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[uint64]Document, len(ids))
	for _, id := range ids {
		if doc, ok := s.data[id]; ok {
			result[id] = doc
		}
	}

	return result
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
