package testutil

import (
	"time"

	"github.com/google/uuid"

	"librarian/internal/library/models"
	id "librarian/pkg/domain"
)

// TestIDs provides convenient pre-generated IDs for tests.
// Use these for deterministic test data.
var TestIDs = struct {
	BookID1     id.BookID
	BookID2     id.BookID
	BorrowerID1 id.BorrowerID
	BorrowerID2 id.BorrowerID
}{
	BookID1:     id.BookID(uuid.MustParse("b0000000-0000-0000-0000-000000000001")),
	BookID2:     id.BookID(uuid.MustParse("b0000000-0000-0000-0000-000000000002")),
	BorrowerID1: id.BorrowerID(uuid.MustParse("a0000000-0000-0000-0000-000000000001")),
	BorrowerID2: id.BorrowerID(uuid.MustParse("a0000000-0000-0000-0000-000000000002")),
}

// FixedTime is a stable clock reading for assertions on timestamps.
var FixedTime = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

// BorrowerBuilder provides a fluent interface for building test borrowers.
type BorrowerBuilder struct {
	borrower *models.Borrower
}

// NewBorrowerBuilder creates a new BorrowerBuilder with sensible defaults.
func NewBorrowerBuilder() *BorrowerBuilder {
	return &BorrowerBuilder{
		borrower: &models.Borrower{
			ID:        TestIDs.BorrowerID1,
			Name:      "Oliver Bennett",
			Email:     "oliver.bennett@example.com",
			CreatedAt: FixedTime,
		},
	}
}

func (b *BorrowerBuilder) WithID(borrowerID id.BorrowerID) *BorrowerBuilder {
	b.borrower.ID = borrowerID
	return b
}

func (b *BorrowerBuilder) WithName(name string) *BorrowerBuilder {
	b.borrower.Name = name
	return b
}

func (b *BorrowerBuilder) WithEmail(email string) *BorrowerBuilder {
	b.borrower.Email = email
	return b
}

func (b *BorrowerBuilder) Build() *models.Borrower {
	return b.borrower
}

// BookBuilder provides a fluent interface for building test book copies.
type BookBuilder struct {
	book *models.Book
}

// NewBookBuilder creates an on-shelf copy of "Hell Yeah Or No".
func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		book: &models.Book{
			ID:        TestIDs.BookID1,
			ISBN:      "978-0-9995906-0-9",
			Title:     "Hell Yeah Or No",
			Author:    "Derek Sivers",
			CreatedAt: FixedTime,
			UpdatedAt: FixedTime,
		},
	}
}

func (b *BookBuilder) WithID(bookID id.BookID) *BookBuilder {
	b.book.ID = bookID
	return b
}

func (b *BookBuilder) WithISBN(isbn string) *BookBuilder {
	b.book.ISBN = isbn
	return b
}

func (b *BookBuilder) WithCatalogEntry(title, author string) *BookBuilder {
	b.book.Title = title
	b.book.Author = author
	return b
}

// BorrowedBy marks the copy as checked out.
func (b *BookBuilder) BorrowedBy(borrower *models.Borrower) *BookBuilder {
	b.book.Borrower = borrower
	return b
}

func (b *BookBuilder) Build() *models.Book {
	return b.book
}
