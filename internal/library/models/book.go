package models

import (
	"time"

	id "librarian/pkg/domain"
	dErrors "librarian/pkg/domain-errors"
	"librarian/pkg/platform/validation"
	strutil "librarian/pkg/string"
	validate "librarian/pkg/validation"
)

// BookStatus is derived from whether a copy has a current borrower.
type BookStatus string

const (
	BookStatusOnShelf    BookStatus = "on_shelf"
	BookStatusCheckedOut BookStatus = "checked_out"
)

// Book is one physical copy. Copies of the same title share an ISBN.
type Book struct {
	ID        id.BookID
	ISBN      string
	Title     string
	Author    string
	Borrower  *Borrower
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook trims all fields and rejects blank or oversized values.
func NewBook(bookID id.BookID, isbn, title, author string, now time.Time) (*Book, error) {
	strutil.TrimStrings(&isbn, &title, &author)

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"isbn", isbn, validation.MaxISBNLength},
		{"title", title, validation.MaxTitleLength},
		{"author", author, validation.MaxAuthorLength},
	}
	for _, f := range fields {
		if err := validate.Var(f.name, f.value, "notblank"); err != nil {
			return nil, err
		}
		if err := validation.CheckStringLength(f.name, f.value, f.max); err != nil {
			return nil, err
		}
	}
	if bookID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "book ID required")
	}

	return &Book{
		ID:        bookID,
		ISBN:      isbn,
		Title:     title,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (b *Book) IsCheckedOut() bool {
	return b.Borrower != nil
}

func (b *Book) Status() BookStatus {
	if b.IsCheckedOut() {
		return BookStatusCheckedOut
	}
	return BookStatusOnShelf
}

// Borrow moves the copy from the shelf to the given borrower.
// Returns CodeAlreadyBorrowed if the copy is already checked out.
func (b *Book) Borrow(borrower *Borrower, now time.Time) error {
	if borrower == nil {
		return dErrors.New(dErrors.CodeInvariantViolation, "borrower required")
	}
	if b.IsCheckedOut() {
		return dErrors.New(dErrors.CodeAlreadyBorrowed, "The book is currently borrowed and cannot be borrowed by another borrower.")
	}
	b.Borrower = borrower
	b.UpdatedAt = now
	return nil
}

// Return puts the copy back on the shelf.
// Returns CodeNotBorrowed if the copy is not checked out.
func (b *Book) Return(now time.Time) error {
	if !b.IsCheckedOut() {
		return dErrors.New(dErrors.CodeNotBorrowed, "The book is not currently borrowed.")
	}
	b.Borrower = nil
	b.UpdatedAt = now
	return nil
}

// MatchesCatalogEntry reports whether title and author agree exactly with this copy.
// Comparison is case-sensitive; callers pass trimmed values.
func (b *Book) MatchesCatalogEntry(title, author string) bool {
	return b.Title == title && b.Author == author
}

// Clone returns a deep copy safe to hand outside a store lock.
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}
	c := *b
	c.Borrower = b.Borrower.Clone()
	return &c
}
