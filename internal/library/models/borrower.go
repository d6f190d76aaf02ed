package models

import (
	"time"

	id "librarian/pkg/domain"
	dErrors "librarian/pkg/domain-errors"
	"librarian/pkg/platform/validation"
	strutil "librarian/pkg/string"
	validate "librarian/pkg/validation"
)

// Borrower is a registered library member. Immutable after registration.
type Borrower struct {
	ID        id.BorrowerID
	Name      string
	Email     string
	CreatedAt time.Time
}

// NewBorrower trims name and email and enforces field invariants.
// The email is stored as given; uniqueness is an exact match.
func NewBorrower(borrowerID id.BorrowerID, name, email string, now time.Time) (*Borrower, error) {
	strutil.TrimStrings(&name, &email)

	if err := validate.Var("name", name, "notblank"); err != nil {
		return nil, err
	}
	if err := validation.CheckStringLength("name", name, validation.MaxNameLength); err != nil {
		return nil, err
	}
	if err := validate.Var("email", email, "notblank,email"); err != nil {
		return nil, err
	}
	if err := validation.CheckStringLength("email", email, validation.MaxEmailLength); err != nil {
		return nil, err
	}
	if borrowerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "borrower ID required")
	}

	return &Borrower{
		ID:        borrowerID,
		Name:      name,
		Email:     email,
		CreatedAt: now,
	}, nil
}

// Clone returns a copy safe to hand outside a store lock.
func (b *Borrower) Clone() *Borrower {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
