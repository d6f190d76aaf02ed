package sentinel

import "errors"

// Store errors. The library service translates these into domain errors.
var (
	// ErrNotFound: no record with the requested key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed: a unique field (borrower email) is taken.
	ErrAlreadyUsed = errors.New("already used")
	// ErrInvalidState: a compare-and-set on a book's borrower lost.
	ErrInvalidState = errors.New("invalid state")
	// ErrMissingReference: a foreign key points at a record that does not exist.
	ErrMissingReference = errors.New("missing reference")
)

