package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"librarian/internal/library/models"
	"librarian/internal/platform/events"
	"librarian/internal/sentinel"
	dErrors "librarian/pkg/domain-errors"
	"librarian/pkg/platform/requestcontext"
	fixtures "librarian/pkg/testutil"
)

var errStoreDown = errors.New("connection refused")

func (s *ServiceSuite) TestNew() {
	_, err := New(nil, s.mockBooks)
	s.Error(err)

	_, err = New(s.mockBorrowers, nil)
	s.Error(err)

	svc, err := New(s.mockBorrowers, s.mockBooks)
	s.Require().NoError(err)
	s.NotNil(svc.logger)
	s.NotNil(svc.tracer)
	s.NotNil(svc.now)
}

func (s *ServiceSuite) TestRegisterBorrower() {
	ctx := context.Background()

	s.Run("registers new borrower and publishes event", func() {
		reqCtx := requestcontext.WithRequestID(ctx, "req-123")
		s.mockBorrowers.EXPECT().FindByEmail(gomock.Any(), "Oliver.Bennett@Example.com").Return(nil, sentinel.ErrNotFound)
		s.mockBorrowers.EXPECT().CreateIfEmailAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *models.Borrower) error {
				s.Equal("Oliver Bennett", b.Name)
				s.Equal(fixtures.FixedTime, b.CreatedAt)
				return nil
			})
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e events.Event) error {
				s.Equal(models.EventBorrowerRegistered, e.Type)
				s.Equal("req-123", e.RequestID)
				var payload models.BorrowerRegistered
				s.Require().NoError(json.Unmarshal(e.Payload, &payload))
				s.Equal("Oliver.Bennett@Example.com", payload.Email)
				return nil
			})

		borrower, err := s.service.RegisterBorrower(reqCtx, " Oliver Bennett ", "Oliver.Bennett@Example.com")
		s.Require().NoError(err)
		s.False(borrower.ID.IsNil())
		s.Equal("Oliver Bennett", borrower.Name)
		s.Equal("Oliver.Bennett@Example.com", borrower.Email)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.BorrowersRegistered))
	})

	s.Run("rejects email already registered", func() {
		existing := fixtures.NewBorrowerBuilder().Build()
		s.mockBorrowers.EXPECT().FindByEmail(gomock.Any(), existing.Email).Return(existing, nil)

		_, err := s.service.RegisterBorrower(ctx, "Someone Else", existing.Email)
		s.True(dErrors.HasCode(err, dErrors.CodeDuplicateEmail))
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.Rejections.WithLabelValues(reasonDuplicateEmail)))
	})

	s.Run("concurrent registration losing the insert is a duplicate", func() {
		s.mockBorrowers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.mockBorrowers.EXPECT().CreateIfEmailAvailable(gomock.Any(), gomock.Any()).Return(sentinel.ErrAlreadyUsed)

		_, err := s.service.RegisterBorrower(ctx, "Oliver", "race@example.com")
		s.True(dErrors.HasCode(err, dErrors.CodeDuplicateEmail))
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("validation fails before touching the store", func() {
		_, err := s.service.RegisterBorrower(ctx, "  ", "a@example.com")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = s.service.RegisterBorrower(ctx, "Oliver", "not-an-email")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("Email provided should be valid", err.Error())
	})

	s.Run("store failure is internal", func() {
		s.mockBorrowers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errStoreDown)

		_, err := s.service.RegisterBorrower(ctx, "Oliver", "down@example.com")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.ErrorIs(err, errStoreDown)
	})

	s.Run("publish failure does not fail the operation", func() {
		s.mockBorrowers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.mockBorrowers.EXPECT().CreateIfEmailAvailable(gomock.Any(), gomock.Any()).Return(nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		borrower, err := s.service.RegisterBorrower(ctx, "Oliver", "publish@example.com")
		s.Require().NoError(err)
		s.NotNil(borrower)
	})
}

func (s *ServiceSuite) TestGetBorrower() {
	ctx := context.Background()
	existing := fixtures.NewBorrowerBuilder().Build()

	s.Run("found", func() {
		s.mockBorrowers.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)

		got, err := s.service.GetBorrower(ctx, existing.ID)
		s.Require().NoError(err)
		s.Equal(existing, got)
	})

	s.Run("not found", func() {
		s.mockBorrowers.EXPECT().FindByID(gomock.Any(), existing.ID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetBorrower(ctx, existing.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("borrower not found", err.Error())
	})
}

func (s *ServiceSuite) TestRegisterBook() {
	ctx := context.Background()
	existing := fixtures.NewBookBuilder().Build()

	s.Run("identical copy is accepted", func() {
		s.mockBooks.EXPECT().FindByISBN(gomock.Any(), existing.ISBN).Return([]*models.Book{existing}, nil)
		s.mockBooks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e events.Event) error {
				s.Equal(models.EventBookRegistered, e.Type)
				return nil
			})

		book, err := s.service.RegisterBook(ctx, existing.ISBN, " "+existing.Title+" ", existing.Author)
		s.Require().NoError(err)
		s.NotEqual(existing.ID, book.ID)
		s.Equal(existing.Title, book.Title)
		s.False(book.IsCheckedOut())
	})

	s.Run("different title under same isbn is rejected", func() {
		s.mockBooks.EXPECT().FindByISBN(gomock.Any(), existing.ISBN).Return([]*models.Book{existing}, nil)

		_, err := s.service.RegisterBook(ctx, existing.ISBN, "Another Title", existing.Author)
		s.True(dErrors.HasCode(err, dErrors.CodeConflictingCatalogEntry))
		s.Equal(msgConflictingCatalog, err.Error())
	})

	s.Run("title comparison is case-sensitive", func() {
		s.mockBooks.EXPECT().FindByISBN(gomock.Any(), existing.ISBN).Return([]*models.Book{existing}, nil)

		_, err := s.service.RegisterBook(ctx, existing.ISBN, "hell yeah or no", existing.Author)
		s.True(dErrors.HasCode(err, dErrors.CodeConflictingCatalogEntry))
	})

	s.Run("blank fields are rejected", func() {
		_, err := s.service.RegisterBook(ctx, existing.ISBN, "", existing.Author)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("Title is mandatory", err.Error())
	})

	s.Run("store failure is internal", func() {
		s.mockBooks.EXPECT().FindByISBN(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.mockBooks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errStoreDown)

		_, err := s.service.RegisterBook(ctx, "111", "T", "A")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestGetBookAndFindByISBN() {
	ctx := context.Background()
	existing := fixtures.NewBookBuilder().Build()

	s.Run("get missing book", func() {
		s.mockBooks.EXPECT().FindByID(gomock.Any(), existing.ID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetBook(ctx, existing.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("book not found", err.Error())
	})

	s.Run("find by isbn trims input", func() {
		s.mockBooks.EXPECT().FindByISBN(gomock.Any(), existing.ISBN).Return([]*models.Book{existing}, nil)

		books, err := s.service.FindBooksByISBN(ctx, " "+existing.ISBN+" ")
		s.Require().NoError(err)
		s.Len(books, 1)
	})

	s.Run("find by isbn never returns nil", func() {
		s.mockBooks.EXPECT().FindByISBN(gomock.Any(), "000").Return(nil, nil)

		books, err := s.service.FindBooksByISBN(ctx, "000")
		s.Require().NoError(err)
		s.NotNil(books)
		s.Empty(books)
	})

	s.Run("blank isbn is rejected", func() {
		_, err := s.service.FindBooksByISBN(ctx, "  ")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestListing() {
	ctx := context.Background()

	s.Run("books page totals", func() {
		book := fixtures.NewBookBuilder().Build()
		s.mockBooks.EXPECT().List(gomock.Any(), models.PageRequest{Page: 1, Size: 2}).
			Return([]*models.Book{book}, 3, nil)

		page, err := s.service.ListBooks(ctx, 1, 2)
		s.Require().NoError(err)
		s.Equal(3, page.TotalElements)
		s.Equal(2, page.TotalPages)
		s.Equal(1, page.Page)
		s.Equal(2, page.Size)
		s.Len(page.Content, 1)
	})

	s.Run("empty borrowers listing", func() {
		s.mockBorrowers.EXPECT().List(gomock.Any(), models.PageRequest{Page: 0, Size: 10}).Return(nil, 0, nil)

		page, err := s.service.ListBorrowers(ctx, 0, 10)
		s.Require().NoError(err)
		s.Equal(0, page.TotalPages)
		s.Empty(page.Content)
	})

	s.Run("invalid paging", func() {
		_, err := s.service.ListBooks(ctx, -1, 10)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = s.service.ListBorrowers(ctx, 0, 1000)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("store failure", func() {
		s.mockBooks.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errStoreDown)

		_, err := s.service.ListBooks(ctx, 0, 10)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestBorrowBook() {
	ctx := context.Background()
	borrower := fixtures.NewBorrowerBuilder().Build()
	book := fixtures.NewBookBuilder().Build()

	s.Run("success", func() {
		borrowed := fixtures.NewBookBuilder().BorrowedBy(borrower).Build()
		s.mockBorrowers.EXPECT().FindByID(gomock.Any(), borrower.ID).Return(borrower, nil)
		s.mockBooks.EXPECT().AssignBorrower(gomock.Any(), book.ID, borrower, fixtures.FixedTime).Return(borrowed, nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e events.Event) error {
				s.Equal(models.EventBookBorrowed, e.Type)
				var payload models.BookBorrowed
				s.Require().NoError(json.Unmarshal(e.Payload, &payload))
				s.Equal(borrower.ID.String(), payload.BorrowerID)
				s.Equal(book.ID.String(), payload.BookID)
				return nil
			})

		got, err := s.service.BorrowBook(ctx, borrower.ID, book.ID)
		s.Require().NoError(err)
		s.Equal(borrower.ID, got.Borrower.ID)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.BooksBorrowed))
	})

	s.Run("unknown borrower", func() {
		s.mockBorrowers.EXPECT().FindByID(gomock.Any(), borrower.ID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.BorrowBook(ctx, borrower.ID, book.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("borrower not found", err.Error())
	})

	s.Run("unknown book", func() {
		s.mockBorrowers.EXPECT().FindByID(gomock.Any(), borrower.ID).Return(borrower, nil)
		s.mockBooks.EXPECT().AssignBorrower(gomock.Any(), book.ID, borrower, gomock.Any()).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.BorrowBook(ctx, borrower.ID, book.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("book not found", err.Error())
	})

	s.Run("already borrowed", func() {
		s.mockBorrowers.EXPECT().FindByID(gomock.Any(), borrower.ID).Return(borrower, nil)
		s.mockBooks.EXPECT().AssignBorrower(gomock.Any(), book.ID, borrower, gomock.Any()).
			Return(nil, sentinel.ErrInvalidState)

		_, err := s.service.BorrowBook(ctx, borrower.ID, book.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyBorrowed))
		s.Equal(msgAlreadyBorrowed, err.Error())
	})

	s.Run("borrower removed between lookup and assign", func() {
		s.mockBorrowers.EXPECT().FindByID(gomock.Any(), borrower.ID).Return(borrower, nil)
		s.mockBooks.EXPECT().AssignBorrower(gomock.Any(), book.ID, borrower, gomock.Any()).
			Return(nil, sentinel.ErrMissingReference)

		_, err := s.service.BorrowBook(ctx, borrower.ID, book.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("borrower not found", err.Error())
	})
}

func (s *ServiceSuite) TestReturnBook() {
	ctx := context.Background()
	borrower := fixtures.NewBorrowerBuilder().Build()
	onShelf := fixtures.NewBookBuilder().Build()
	checkedOut := fixtures.NewBookBuilder().BorrowedBy(borrower).Build()

	s.Run("success", func() {
		s.mockBooks.EXPECT().FindByID(gomock.Any(), checkedOut.ID).Return(checkedOut, nil)
		s.mockBooks.EXPECT().ClearBorrower(gomock.Any(), checkedOut.ID, fixtures.FixedTime).Return(onShelf, nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e events.Event) error {
				s.Equal(models.EventBookReturned, e.Type)
				var payload models.BookReturned
				s.Require().NoError(json.Unmarshal(e.Payload, &payload))
				s.Equal(borrower.ID.String(), payload.BorrowerID)
				return nil
			})

		got, err := s.service.ReturnBook(ctx, checkedOut.ID)
		s.Require().NoError(err)
		s.Nil(got.Borrower)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.BooksReturned))
	})

	s.Run("unknown book", func() {
		s.mockBooks.EXPECT().FindByID(gomock.Any(), onShelf.ID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.ReturnBook(ctx, onShelf.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("book on shelf", func() {
		s.mockBooks.EXPECT().FindByID(gomock.Any(), onShelf.ID).Return(onShelf, nil)

		_, err := s.service.ReturnBook(ctx, onShelf.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotBorrowed))
		s.Equal(msgNotBorrowed, err.Error())
	})

	s.Run("concurrent return wins the transition", func() {
		s.mockBooks.EXPECT().FindByID(gomock.Any(), checkedOut.ID).Return(checkedOut, nil)
		s.mockBooks.EXPECT().ClearBorrower(gomock.Any(), checkedOut.ID, gomock.Any()).Return(nil, sentinel.ErrInvalidState)

		_, err := s.service.ReturnBook(ctx, checkedOut.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotBorrowed))
	})
}
