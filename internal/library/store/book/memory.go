package book

import (
	"context"
	"fmt"
	"sync"
	"time"

	"librarian/internal/library/models"
	"librarian/internal/sentinel"
	id "librarian/pkg/domain"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores book copies in memory for the demo environment and tests.
// State transitions run under the write lock, so borrow and return are
// compare-and-set operations.
type InMemory struct {
	mu      sync.RWMutex
	books   map[id.BookID]*models.Book
	isbnIdx map[string][]id.BookID
	order   []id.BookID
}

// NewInMemory creates an in-memory book store.
func NewInMemory() *InMemory {
	return &InMemory{
		books:   make(map[id.BookID]*models.Book),
		isbnIdx: make(map[string][]id.BookID),
	}
}

// Create stores a new copy.
func (s *InMemory) Create(_ context.Context, b *models.Book) error {
	if b == nil {
		return fmt.Errorf("book is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.books[b.ID]; exists {
		return fmt.Errorf("book %s: %w", b.ID, sentinel.ErrAlreadyUsed)
	}
	s.books[b.ID] = b.Clone()
	s.isbnIdx[b.ISBN] = append(s.isbnIdx[b.ISBN], b.ID)
	s.order = append(s.order, b.ID)
	return nil
}

// FindByID retrieves a copy by its UUID.
func (s *InMemory) FindByID(_ context.Context, bookID id.BookID) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.books[bookID]; ok {
		return b.Clone(), nil
	}
	return nil, ErrNotFound
}

// FindByISBN returns every copy sharing the ISBN in insertion order.
func (s *InMemory) FindByISBN(_ context.Context, isbn string) ([]*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.isbnIdx[isbn]
	out := make([]*models.Book, 0, len(ids))
	for _, bookID := range ids {
		out = append(out, s.books[bookID].Clone())
	}
	return out, nil
}

// List returns one page of copies in insertion order plus the total count.
func (s *InMemory) List(_ context.Context, req models.PageRequest) ([]*models.Book, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.order)
	start := min(req.Offset(), total)
	end := min(start+req.Size, total)

	out := make([]*models.Book, 0, end-start)
	for _, bookID := range s.order[start:end] {
		out = append(out, s.books[bookID].Clone())
	}
	return out, total, nil
}

// AssignBorrower checks the copy out if and only if it is on the shelf.
// Returns ErrNotFound for unknown copies and ErrInvalidState when already checked out.
func (s *InMemory) AssignBorrower(_ context.Context, bookID id.BookID, borrower *models.Borrower, now time.Time) (*models.Book, error) {
	if borrower == nil {
		return nil, fmt.Errorf("borrower is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[bookID]
	if !ok {
		return nil, ErrNotFound
	}
	if err := b.Borrow(borrower.Clone(), now); err != nil {
		return nil, fmt.Errorf("book %s already borrowed: %w", bookID, sentinel.ErrInvalidState)
	}
	return b.Clone(), nil
}

// ClearBorrower returns the copy to the shelf if and only if it is checked out.
// Returns ErrNotFound for unknown copies and ErrInvalidState when already on the shelf.
func (s *InMemory) ClearBorrower(_ context.Context, bookID id.BookID, now time.Time) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[bookID]
	if !ok {
		return nil, ErrNotFound
	}
	if err := b.Return(now); err != nil {
		return nil, fmt.Errorf("book %s not borrowed: %w", bookID, sentinel.ErrInvalidState)
	}
	return b.Clone(), nil
}
