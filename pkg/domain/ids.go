// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "librarian/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing BookID where BorrowerID is expected.
type (
	BookID     uuid.UUID
	BorrowerID uuid.UUID
)

// New functions - generate fresh identifiers at creation time.

func NewBookID() BookID         { return BookID(uuid.New()) }
func NewBorrowerID() BorrowerID { return BorrowerID(uuid.New()) }

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseBookID(s string) (BookID, error) {
	id, err := parseUUID(s, "book ID")
	return BookID(id), err
}

func ParseBorrowerID(s string) (BorrowerID, error) {
	id, err := parseUUID(s, "borrower ID")
	return BorrowerID(id), err
}

// String methods - for logging, SQL parameters and JSON.

func (id BookID) String() string     { return uuid.UUID(id).String() }
func (id BorrowerID) String() string { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id BookID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id BorrowerID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here so store lookups return proper "not found" errors.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "invalid "+label+" format")
	}
	return id, nil
}
