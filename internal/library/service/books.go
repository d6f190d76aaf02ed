package service

import (
	"context"

	"librarian/internal/library/models"
	id "librarian/pkg/domain"
	dErrors "librarian/pkg/domain-errors"
	"librarian/pkg/platform/tracer"
	strutil "librarian/pkg/string"
	validate "librarian/pkg/validation"
)

// RegisterBook adds a copy to the catalog. Copies sharing an ISBN must agree
// on title and author; identical copies may coexist.
func (s *Service) RegisterBook(ctx context.Context, isbn, title, author string) (_ *models.Book, err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanRegisterBook, "register_book")
	defer func() { finish(err) }()

	book, err := models.NewBook(id.NewBookID(), isbn, title, author, s.now())
	if err != nil {
		s.reject(ctx, reasonValidation, "error", err)
		return nil, err
	}

	s.catalogLocks.Lock(book.ISBN)
	defer s.catalogLocks.Unlock(book.ISBN)

	existing, err := s.books.FindByISBN(ctx, book.ISBN)
	if err != nil {
		return nil, s.wrapBookErr(ctx, err, "failed to look up books by isbn")
	}
	for _, other := range existing {
		if !other.MatchesCatalogEntry(book.Title, book.Author) {
			s.reject(ctx, reasonConflictingCatalog, "isbn", book.ISBN)
			return nil, dErrors.New(dErrors.CodeConflictingCatalogEntry, msgConflictingCatalog)
		}
	}

	if err = s.books.Create(ctx, book); err != nil {
		return nil, s.wrapBookErr(ctx, err, "failed to save book")
	}

	s.audit(ctx, models.EventBookRegistered, models.BookRegistered{
		BookID: book.ID.String(),
		ISBN:   book.ISBN,
		Title:  book.Title,
		Author: book.Author,
	}, "book_id", book.ID.String(), "isbn", book.ISBN)
	s.incrementBookRegistered()

	return book, nil
}

// GetBook returns a single copy or CodeNotFound.
func (s *Service) GetBook(ctx context.Context, bookID id.BookID) (_ *models.Book, err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanGetBook, "get_book",
		tracer.String(tracer.AttrBookID, bookID.String()))
	defer func() { finish(err) }()

	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, s.wrapBookErr(ctx, err, "failed to get book")
	}
	return book, nil
}

// FindBooksByISBN returns every copy sharing the ISBN, possibly none.
func (s *Service) FindBooksByISBN(ctx context.Context, isbn string) (_ []*models.Book, err error) {
	strutil.TrimStrings(&isbn)
	ctx, finish := s.startOp(ctx, tracer.SpanFindBooksByISBN, "find_books_by_isbn",
		tracer.String(tracer.AttrISBN, isbn))
	defer func() { finish(err) }()

	if err = validate.Var("isbn", isbn, "notblank"); err != nil {
		return nil, err
	}
	books, err := s.books.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, s.wrapBookErr(ctx, err, "failed to find books by isbn")
	}
	if books == nil {
		books = []*models.Book{}
	}
	return books, nil
}

// ListBooks returns one page of copies in registration order.
func (s *Service) ListBooks(ctx context.Context, page, size int) (_ models.Page[*models.Book], err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanListBooks, "list_books",
		tracer.Int(tracer.AttrPage, page), tracer.Int(tracer.AttrPageSize, size))
	defer func() { finish(err) }()

	req, err := models.NewPageRequest(page, size)
	if err != nil {
		return models.Page[*models.Book]{}, err
	}
	items, total, err := s.books.List(ctx, req)
	if err != nil {
		return models.Page[*models.Book]{}, s.wrapBookErr(ctx, err, "failed to list books")
	}
	return models.NewPage(items, total, req), nil
}
