package borrower

import (
	"context"
	"fmt"
	"sync"

	"librarian/internal/library/models"
	"librarian/internal/sentinel"
	id "librarian/pkg/domain"
)

// ErrNotFound is returned when a borrower is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores borrowers in memory for the demo environment and tests.
type InMemory struct {
	mu        sync.RWMutex
	borrowers map[id.BorrowerID]*models.Borrower
	emailIdx  map[string]id.BorrowerID
	order     []id.BorrowerID
}

// NewInMemory creates an in-memory borrower store.
func NewInMemory() *InMemory {
	return &InMemory{
		borrowers: make(map[id.BorrowerID]*models.Borrower),
		emailIdx:  make(map[string]id.BorrowerID),
	}
}

// CreateIfEmailAvailable atomically creates the borrower if the email is not already taken.
func (s *InMemory) CreateIfEmailAvailable(_ context.Context, b *models.Borrower) error {
	if b == nil {
		return fmt.Errorf("borrower is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.emailIdx[b.Email]; exists {
		return fmt.Errorf("borrower email must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	s.borrowers[b.ID] = b.Clone()
	s.emailIdx[b.Email] = b.ID
	s.order = append(s.order, b.ID)
	return nil
}

// FindByID retrieves a borrower by its UUID.
func (s *InMemory) FindByID(_ context.Context, borrowerID id.BorrowerID) (*models.Borrower, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.borrowers[borrowerID]; ok {
		return b.Clone(), nil
	}
	return nil, ErrNotFound
}

// FindByEmail retrieves a borrower by exact email.
func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.Borrower, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if borrowerID, ok := s.emailIdx[email]; ok {
		return s.borrowers[borrowerID].Clone(), nil
	}
	return nil, ErrNotFound
}

// List returns one page of borrowers in registration order plus the total count.
func (s *InMemory) List(_ context.Context, req models.PageRequest) ([]*models.Borrower, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.order)
	start := min(req.Offset(), total)
	end := min(start+req.Size, total)

	out := make([]*models.Borrower, 0, end-start)
	for _, borrowerID := range s.order[start:end] {
		out = append(out, s.borrowers[borrowerID].Clone())
	}
	return out, total, nil
}
