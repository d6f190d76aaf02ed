package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"librarian/internal/library/models"
	id "librarian/pkg/domain"
	"librarian/pkg/platform/httputil"
	request "librarian/pkg/platform/middleware/request"
	"librarian/pkg/platform/validation"
)

// BasePath is the prefix of every library route.
const BasePath = "/api/library"

// Service defines the interface for library operations.
type Service interface {
	RegisterBorrower(ctx context.Context, name, email string) (*models.Borrower, error)
	RegisterBook(ctx context.Context, isbn, title, author string) (*models.Book, error)
	ListBooks(ctx context.Context, page, size int) (models.Page[*models.Book], error)
	ListBorrowers(ctx context.Context, page, size int) (models.Page[*models.Borrower], error)
	BorrowBook(ctx context.Context, borrowerID id.BorrowerID, bookID id.BookID) (*models.Book, error)
	ReturnBook(ctx context.Context, bookID id.BookID) (*models.Book, error)
	FindBooksByISBN(ctx context.Context, isbn string) ([]*models.Book, error)
	GetBook(ctx context.Context, bookID id.BookID) (*models.Book, error)
	GetBorrower(ctx context.Context, borrowerID id.BorrowerID) (*models.Borrower, error)
}

// Handler handles library endpoints.
type Handler struct {
	logger  *slog.Logger
	library Service
}

// New creates a new library Handler.
func New(library Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		library: library,
	}
}

// Register registers the library routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route(BasePath, func(r chi.Router) {
		r.Post("/borrowers", h.HandleRegisterBorrower)
		r.Get("/borrowers", h.HandleListBorrowers)
		r.Get("/borrowers/{borrowerId}", h.HandleGetBorrower)

		r.Post("/books", h.HandleRegisterBook)
		r.Get("/books", h.HandleListBooks)
		r.Get("/books/{bookId}", h.HandleGetBook)
		r.Get("/books/isbn/{isbn}", h.HandleFindBooksByISBN)

		r.Post("/borrow/{borrowerId}/{bookId}", h.HandleBorrowBook)
		r.Post("/return/{bookId}", h.HandleReturnBook)
	})
}

func (h *Handler) HandleRegisterBorrower(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	req, ok := httputil.DecodeAndPrepare[RegisterBorrowerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	borrower, err := h.library.RegisterBorrower(ctx, req.Name, req.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to register borrower",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toBorrowerResponse(borrower))
}

func (h *Handler) HandleRegisterBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	req, ok := httputil.DecodeAndPrepare[RegisterBookRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	book, err := h.library.RegisterBook(ctx, req.ISBN, req.Title, req.Author)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to register book",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toBookResponse(book))
}

func (h *Handler) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	page, size, err := parsePaging(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid paging parameters",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.library.ListBooks(ctx, page, size)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list books",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPageResponse(result, toBookResponse))
}

func (h *Handler) HandleListBorrowers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	page, size, err := parsePaging(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid paging parameters",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.library.ListBorrowers(ctx, page, size)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list borrowers",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPageResponse(result, toBorrowerResponse))
}

func (h *Handler) HandleBorrowBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	borrowerID, err := id.ParseBorrowerID(chi.URLParam(r, "borrowerId"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid borrower ID",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	bookID, err := id.ParseBookID(chi.URLParam(r, "bookId"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid book ID",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	book, err := h.library.BorrowBook(ctx, borrowerID, bookID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to borrow book",
			"request_id", requestID,
			"book_id", bookID.String(),
			"borrower_id", borrowerID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *Handler) HandleReturnBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	bookID, err := id.ParseBookID(chi.URLParam(r, "bookId"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid book ID",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	book, err := h.library.ReturnBook(ctx, bookID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to return book",
			"request_id", requestID,
			"book_id", bookID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *Handler) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	bookID, err := id.ParseBookID(chi.URLParam(r, "bookId"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid book ID",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	book, err := h.library.GetBook(ctx, bookID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get book",
			"request_id", requestID,
			"book_id", bookID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *Handler) HandleFindBooksByISBN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	books, err := h.library.FindBooksByISBN(ctx, chi.URLParam(r, "isbn"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to find books by isbn",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	res := make([]BookResponse, 0, len(books))
	for _, b := range books {
		res = append(res, toBookResponse(b))
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) HandleGetBorrower(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(r)

	borrowerID, err := id.ParseBorrowerID(chi.URLParam(r, "borrowerId"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid borrower ID",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	borrower, err := h.library.GetBorrower(ctx, borrowerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get borrower",
			"request_id", requestID,
			"borrower_id", borrowerID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBorrowerResponse(borrower))
}

// parsePaging reads page and size query parameters, applying defaults.
func parsePaging(r *http.Request) (page, size int, err error) {
	page, err = httputil.QueryInt(r, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err = httputil.QueryInt(r, "size", validation.DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if err := validation.CheckPaging(page, size); err != nil {
		return 0, 0, err
	}
	return page, size, nil
}
