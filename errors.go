package lexgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUTF8 is returned when document or query text is not
	// well-formed UTF-8. Encoding errors fail at this boundary; the core
	// packages assume valid input.
	ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

	// ErrInvalidLimit is returned when a search limit is not positive.
	ErrInvalidLimit = errors.New("limit must be positive")
)

// ErrDuplicateID indicates an attempt to index a document ID that is
// already in the corpus. The corpus is append-only; re-indexing an ID
// would silently append duplicate postings, so the engine rejects it.
type ErrDuplicateID struct {
	DocID uint64
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("document %d is already indexed", e.DocID)
}
