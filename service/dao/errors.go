package dao

import "errors"

// Common, reusable DAO errors.  Using sentinel variables allows callers to
// reliably detect error conditions via errors.Is/As instead of brittle string
// comparisons.

var (
	// ErrNotFound is returned when the requested document does not exist at
	// the resolved URL.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidDocument indicates that the document was fetched but could
	// not be decoded or failed structural validation.
	ErrInvalidDocument = errors.New("dao: invalid document")
)
