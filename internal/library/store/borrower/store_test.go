package borrower

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"librarian/internal/library/models"
	"librarian/internal/platform/database"
	"librarian/internal/sentinel"
	id "librarian/pkg/domain"
	"librarian/pkg/testutil"
)

type borrowerStore interface {
	CreateIfEmailAvailable(ctx context.Context, b *models.Borrower) error
	FindByID(ctx context.Context, borrowerID id.BorrowerID) (*models.Borrower, error)
	FindByEmail(ctx context.Context, email string) (*models.Borrower, error)
	List(ctx context.Context, req models.PageRequest) ([]*models.Borrower, int, error)
}

// StoreSuite runs the same contract against every backend.
type StoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) borrowerStore
	store    borrowerStore
	ctx      context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func TestInMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) borrowerStore { return NewInMemory() }})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: newSQLiteStore})
}

func newSQLiteStore(t *testing.T) borrowerStore {
	t.Helper()
	pool, err := database.New(database.SQLiteConfig(filepath.Join(t.TempDir(), "library.db")))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })
	if _, err := pool.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSQL(pool.DB(), pool.Driver())
}

func (s *StoreSuite) newBorrower(name, email string) *models.Borrower {
	b, err := models.NewBorrower(id.NewBorrowerID(), name, email, time.Now().UTC().Truncate(time.Millisecond))
	s.Require().NoError(err)
	return b
}

func (s *StoreSuite) TestCreateAndFind() {
	b := s.newBorrower("Oliver Bennett", "Oliver.Bennett@Example.com")
	s.Require().NoError(s.store.CreateIfEmailAvailable(s.ctx, b))

	byID, err := s.store.FindByID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(b.ID, byID.ID)
	s.Equal("Oliver Bennett", byID.Name)
	s.Equal("Oliver.Bennett@Example.com", byID.Email)
	s.True(b.CreatedAt.Equal(byID.CreatedAt))

	byEmail, err := s.store.FindByEmail(s.ctx, "Oliver.Bennett@Example.com")
	s.Require().NoError(err)
	s.Equal(b.ID, byEmail.ID)
}

func (s *StoreSuite) TestEmailMatchIsExact() {
	s.Require().NoError(s.store.CreateIfEmailAvailable(s.ctx, s.newBorrower("A", "Reader@Example.com")))

	_, err := s.store.FindByEmail(s.ctx, "reader@example.com")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.CreateIfEmailAvailable(s.ctx, s.newBorrower("B", "reader@example.com")))
}

func (s *StoreSuite) TestDuplicateEmailReturnsAlreadyUsed() {
	s.Require().NoError(s.store.CreateIfEmailAvailable(s.ctx, s.newBorrower("A", "dup@example.com")))

	err := s.store.CreateIfEmailAvailable(s.ctx, s.newBorrower("B", "dup@example.com"))
	s.Require().Error(err)
	s.ErrorIs(err, sentinel.ErrAlreadyUsed)

	_, total, err := s.store.List(s.ctx, models.DefaultPageRequest())
	s.Require().NoError(err)
	s.Equal(1, total)
}

func (s *StoreSuite) TestConcurrentRegistrationIsAtomic() {
	const workers = 8
	candidates := make([]*models.Borrower, workers)
	for i := range candidates {
		candidates[i] = s.newBorrower(fmt.Sprintf("B%d", i), "race@example.com")
	}
	result := testutil.RunConcurrent(workers, func(i int) error {
		return s.store.CreateIfEmailAvailable(s.ctx, candidates[i])
	})

	s.Equal(int32(1), result.Successes, "exactly one registration may win the email")
	s.Equal(int32(workers-1), result.Conflicts)
}

func (s *StoreSuite) TestNotFound() {
	_, err := s.store.FindByID(s.ctx, id.NewBorrowerID())
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestListPreservesInsertionOrder() {
	var ids []id.BorrowerID
	for i := range 5 {
		b := s.newBorrower(fmt.Sprintf("Borrower %d", i), fmt.Sprintf("b%d@example.com", i))
		s.Require().NoError(s.store.CreateIfEmailAvailable(s.ctx, b))
		ids = append(ids, b.ID)
	}

	page, total, err := s.store.List(s.ctx, models.PageRequest{Page: 1, Size: 2})
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(page, 2)
	s.Equal(ids[2], page[0].ID)
	s.Equal(ids[3], page[1].ID)

	last, _, err := s.store.List(s.ctx, models.PageRequest{Page: 2, Size: 2})
	s.Require().NoError(err)
	s.Require().Len(last, 1)
	s.Equal(ids[4], last[0].ID)

	beyond, total, err := s.store.List(s.ctx, models.PageRequest{Page: 9, Size: 2})
	s.Require().NoError(err)
	s.Empty(beyond)
	s.Equal(5, total)
}
