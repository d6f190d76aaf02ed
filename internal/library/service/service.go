package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"librarian/internal/library/metrics"
	"librarian/internal/library/models"
	"librarian/internal/platform/events"
	id "librarian/pkg/domain"
	"librarian/pkg/platform/keylock"
	"librarian/pkg/platform/tracer"
)

// BorrowerStore defines the persistence interface for borrowers.
// Error Contract: Find methods return sentinel.ErrNotFound when the entity doesn't exist;
// CreateIfEmailAvailable returns sentinel.ErrAlreadyUsed when the email is taken.
type BorrowerStore interface {
	CreateIfEmailAvailable(ctx context.Context, borrower *models.Borrower) error
	FindByID(ctx context.Context, borrowerID id.BorrowerID) (*models.Borrower, error)
	FindByEmail(ctx context.Context, email string) (*models.Borrower, error)
	List(ctx context.Context, req models.PageRequest) ([]*models.Borrower, int, error)
}

// BookStore defines the persistence interface for book copies.
// Error Contract: FindByID returns sentinel.ErrNotFound. AssignBorrower and ClearBorrower
// are compare-and-set transitions returning sentinel.ErrNotFound for a missing copy and
// sentinel.ErrInvalidState when the copy is not in the expected state. AssignBorrower
// returns sentinel.ErrMissingReference when the borrower does not exist.
type BookStore interface {
	Create(ctx context.Context, book *models.Book) error
	FindByID(ctx context.Context, bookID id.BookID) (*models.Book, error)
	FindByISBN(ctx context.Context, isbn string) ([]*models.Book, error)
	List(ctx context.Context, req models.PageRequest) ([]*models.Book, int, error)
	AssignBorrower(ctx context.Context, bookID id.BookID, borrower *models.Borrower, now time.Time) (*models.Book, error)
	ClearBorrower(ctx context.Context, bookID id.BookID, now time.Time) (*models.Book, error)
}

// EventPublisher delivers domain events after successful mutations.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service implements borrower and book registration plus circulation.
type Service struct {
	borrowers BorrowerStore
	books     BookStore
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
	now       func() time.Time

	// catalogLocks serializes the ISBN consistency check with the insert.
	catalogLocks *keylock.Sharded
}

// New creates a library service. Both stores are required.
func New(borrowers BorrowerStore, books BookStore, opts ...Option) (*Service, error) {
	if borrowers == nil {
		return nil, errors.New("borrower store is required")
	}
	if books == nil {
		return nil, errors.New("book store is required")
	}
	svc := &Service{
		borrowers:    borrowers,
		books:        books,
		catalogLocks: keylock.New(0),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.tracer == nil {
		svc.tracer = tracer.NewNoop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc, nil
}
