package service

import (
	"context"

	"librarian/internal/library/models"
	id "librarian/pkg/domain"
	dErrors "librarian/pkg/domain-errors"
	"librarian/pkg/platform/tracer"
)

// BorrowBook checks a copy out to a borrower.
// The store transition is a compare-and-set, so of two concurrent borrowers of
// one copy exactly one succeeds and the other gets CodeAlreadyBorrowed.
func (s *Service) BorrowBook(ctx context.Context, borrowerID id.BorrowerID, bookID id.BookID) (_ *models.Book, err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanBorrowBook, "borrow_book",
		tracer.String(tracer.AttrBookID, bookID.String()),
		tracer.String(tracer.AttrBorrowerID, borrowerID.String()),
	)
	defer func() { finish(err) }()

	borrower, err := s.borrowers.FindByID(ctx, borrowerID)
	if err != nil {
		return nil, s.wrapBorrowerErr(ctx, err, "failed to load borrower")
	}

	book, err := s.books.AssignBorrower(ctx, bookID, borrower, s.now())
	if err != nil {
		return nil, s.translate(ctx, err, borrowErrorMappings, "failed to borrow book")
	}

	s.audit(ctx, models.EventBookBorrowed, models.BookBorrowed{
		BookID:     book.ID.String(),
		BorrowerID: borrower.ID.String(),
	}, "book_id", book.ID.String(), "borrower_id", borrower.ID.String())
	s.incrementBorrowed()

	return book, nil
}

// ReturnBook puts a checked-out copy back on the shelf.
func (s *Service) ReturnBook(ctx context.Context, bookID id.BookID) (_ *models.Book, err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanReturnBook, "return_book",
		tracer.String(tracer.AttrBookID, bookID.String()))
	defer func() { finish(err) }()

	current, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, s.wrapBookErr(ctx, err, "failed to load book")
	}
	if !current.IsCheckedOut() {
		s.reject(ctx, reasonNotBorrowed, "book_id", bookID.String())
		return nil, dErrors.New(dErrors.CodeNotBorrowed, msgNotBorrowed)
	}

	book, err := s.books.ClearBorrower(ctx, bookID, s.now())
	if err != nil {
		return nil, s.translate(ctx, err, returnErrorMappings, "failed to return book")
	}

	s.audit(ctx, models.EventBookReturned, models.BookReturned{
		BookID:     book.ID.String(),
		BorrowerID: current.Borrower.ID.String(),
	}, "book_id", book.ID.String(), "borrower_id", current.Borrower.ID.String())
	s.incrementReturned()

	return book, nil
}
