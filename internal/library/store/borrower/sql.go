package borrower

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"librarian/internal/library/models"
	"librarian/internal/library/store"
	"librarian/internal/sentinel"
	id "librarian/pkg/domain"
)

var borrowerColumns = []any{
	goqu.C(store.ColID),
	goqu.C(store.ColName),
	goqu.C(store.ColEmail),
	goqu.C(store.ColCreatedAt),
}

// SQLStore persists borrowers in PostgreSQL or SQLite.
type SQLStore struct {
	db      *sql.DB
	dialect store.Dialect
}

// NewSQL constructs a SQL-backed borrower store for the given driver.
func NewSQL(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, dialect: store.NewDialect(driver)}
}

// CreateIfEmailAvailable inserts the borrower; the UNIQUE(email) constraint
// makes the uniqueness check atomic.
func (s *SQLStore) CreateIfEmailAvailable(ctx context.Context, b *models.Borrower) error {
	if b == nil {
		return fmt.Errorf("borrower is required")
	}
	query, args, err := s.dialect.Insert(store.TableBorrowers).Rows(goqu.Record{
		store.ColID:        b.ID.String(),
		store.ColName:      b.Name,
		store.ColEmail:     b.Email,
		store.ColCreatedAt: s.dialect.Time(b.CreatedAt),
	}).Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert borrower: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if store.IsUniqueViolation(err) {
			return fmt.Errorf("borrower email must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create borrower: %w", err)
	}
	return nil
}

// FindByID retrieves a borrower by its UUID.
func (s *SQLStore) FindByID(ctx context.Context, borrowerID id.BorrowerID) (*models.Borrower, error) {
	return s.findOne(ctx, goqu.C(store.ColID).Eq(borrowerID.String()), "find borrower by id")
}

// FindByEmail retrieves a borrower by exact email.
func (s *SQLStore) FindByEmail(ctx context.Context, email string) (*models.Borrower, error) {
	return s.findOne(ctx, goqu.C(store.ColEmail).Eq(email), "find borrower by email")
}

func (s *SQLStore) findOne(ctx context.Context, where goqu.Expression, action string) (*models.Borrower, error) {
	query, args, err := s.dialect.From(store.TableBorrowers).
		Select(borrowerColumns...).
		Where(where).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", action, err)
	}

	b, err := scanBorrower(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return b, nil
}

// List returns one page of borrowers in registration order plus the total count.
func (s *SQLStore) List(ctx context.Context, req models.PageRequest) ([]*models.Borrower, int, error) {
	total, err := s.count(ctx)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := s.dialect.From(store.TableBorrowers).
		Select(borrowerColumns...).
		Order(goqu.I(store.ColSeq).Asc()).
		Limit(uint(req.Size)).
		Offset(uint(req.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list borrowers: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list borrowers: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Borrower, 0, req.Size)
	for rows.Next() {
		b, err := scanBorrower(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan borrower: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate borrowers: %w", err)
	}
	return out, total, nil
}

func (s *SQLStore) count(ctx context.Context) (int, error) {
	query, args, err := s.dialect.From(store.TableBorrowers).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count borrowers: %w", err)
	}
	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count borrowers: %w", err)
	}
	return count, nil
}

type borrowerRow interface {
	Scan(dest ...any) error
}

func scanBorrower(row borrowerRow) (*models.Borrower, error) {
	var (
		b          models.Borrower
		borrowerID uuid.UUID
		createdAt  store.Timestamp
	)
	if err := row.Scan(&borrowerID, &b.Name, &b.Email, &createdAt); err != nil {
		return nil, err
	}
	b.ID = id.BorrowerID(borrowerID)
	b.CreatedAt = createdAt.Time
	return &b, nil
}
