package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"librarian/internal/library/models"
	"librarian/internal/library/store"
	"librarian/internal/sentinel"
	id "librarian/pkg/domain"
)

const (
	aliasBook     = "b"
	aliasBorrower = "r"
)

// bookColumns must match the scan order in scanBook.
var bookColumns = []any{
	goqu.T(aliasBook).Col(store.ColID),
	goqu.T(aliasBook).Col(store.ColISBN),
	goqu.T(aliasBook).Col(store.ColTitle),
	goqu.T(aliasBook).Col(store.ColAuthor),
	goqu.T(aliasBook).Col(store.ColCreatedAt),
	goqu.T(aliasBook).Col(store.ColUpdatedAt),
	goqu.T(aliasBorrower).Col(store.ColID),
	goqu.T(aliasBorrower).Col(store.ColName),
	goqu.T(aliasBorrower).Col(store.ColEmail),
	goqu.T(aliasBorrower).Col(store.ColCreatedAt),
}

// SQLStore persists book copies in PostgreSQL or SQLite.
type SQLStore struct {
	db      *sql.DB
	dialect store.Dialect
}

// NewSQL constructs a SQL-backed book store for the given driver.
func NewSQL(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, dialect: store.NewDialect(driver)}
}

// Create stores a new copy on the shelf.
func (s *SQLStore) Create(ctx context.Context, b *models.Book) error {
	if b == nil {
		return fmt.Errorf("book is required")
	}
	query, args, err := s.dialect.Insert(store.TableBooks).Rows(goqu.Record{
		store.ColID:        b.ID.String(),
		store.ColISBN:      b.ISBN,
		store.ColTitle:     b.Title,
		store.ColAuthor:    b.Author,
		store.ColCreatedAt: s.dialect.Time(b.CreatedAt),
		store.ColUpdatedAt: s.dialect.Time(b.UpdatedAt),
	}).Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert book: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if store.IsUniqueViolation(err) {
			return fmt.Errorf("book %s: %w", b.ID, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// FindByID retrieves a copy with its current borrower.
func (s *SQLStore) FindByID(ctx context.Context, bookID id.BookID) (*models.Book, error) {
	query, args, err := s.selectBooks().
		Where(goqu.T(aliasBook).Col(store.ColID).Eq(bookID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build find book by id: %w", err)
	}

	b, err := scanBook(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}
	return b, nil
}

// FindByISBN returns every copy sharing the ISBN in insertion order.
func (s *SQLStore) FindByISBN(ctx context.Context, isbn string) ([]*models.Book, error) {
	query, args, err := s.selectBooks().
		Where(goqu.T(aliasBook).Col(store.ColISBN).Eq(isbn)).
		Order(goqu.T(aliasBook).Col(store.ColSeq).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build find books by isbn: %w", err)
	}
	return s.queryBooks(ctx, query, args, 0)
}

// List returns one page of copies in insertion order plus the total count.
func (s *SQLStore) List(ctx context.Context, req models.PageRequest) ([]*models.Book, int, error) {
	countQuery, countArgs, err := s.dialect.From(store.TableBooks).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count books: %w", err)
	}
	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	query, args, err := s.selectBooks().
		Order(goqu.T(aliasBook).Col(store.ColSeq).Asc()).
		Limit(uint(req.Size)).
		Offset(uint(req.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list books: %w", err)
	}
	books, err := s.queryBooks(ctx, query, args, req.Size)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// AssignBorrower checks the copy out if and only if it is on the shelf:
// UPDATE ... WHERE id = ? AND borrower_id IS NULL.
func (s *SQLStore) AssignBorrower(ctx context.Context, bookID id.BookID, borrower *models.Borrower, now time.Time) (*models.Book, error) {
	if borrower == nil {
		return nil, fmt.Errorf("borrower is required")
	}
	query, args, err := s.dialect.Update(store.TableBooks).
		Set(goqu.Record{
			store.ColBorrowerID: borrower.ID.String(),
			store.ColUpdatedAt:  s.dialect.Time(now),
		}).
		Where(
			goqu.C(store.ColID).Eq(bookID.String()),
			goqu.C(store.ColBorrowerID).IsNull(),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build assign borrower: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("borrower %s: %w", borrower.ID, sentinel.ErrMissingReference)
		}
		return nil, fmt.Errorf("assign borrower: %w", err)
	}
	return s.afterTransition(ctx, bookID, res, "already borrowed")
}

// ClearBorrower returns the copy to the shelf if and only if it is checked out:
// UPDATE ... WHERE id = ? AND borrower_id IS NOT NULL.
func (s *SQLStore) ClearBorrower(ctx context.Context, bookID id.BookID, now time.Time) (*models.Book, error) {
	query, args, err := s.dialect.Update(store.TableBooks).
		Set(goqu.Record{
			store.ColBorrowerID: nil,
			store.ColUpdatedAt:  s.dialect.Time(now),
		}).
		Where(
			goqu.C(store.ColID).Eq(bookID.String()),
			goqu.C(store.ColBorrowerID).IsNotNull(),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build clear borrower: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("clear borrower: %w", err)
	}
	return s.afterTransition(ctx, bookID, res, "not borrowed")
}

// afterTransition distinguishes a lost compare-and-set from a missing row
// and reloads the copy on success.
func (s *SQLStore) afterTransition(ctx context.Context, bookID id.BookID, res sql.Result, conflict string) (*models.Book, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("book transition rows: %w", err)
	}
	b, err := s.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("book %s %s: %w", bookID, conflict, sentinel.ErrInvalidState)
	}
	return b, nil
}

func (s *SQLStore) selectBooks() *goqu.SelectDataset {
	return s.dialect.From(goqu.T(store.TableBooks).As(aliasBook)).
		LeftJoin(
			goqu.T(store.TableBorrowers).As(aliasBorrower),
			goqu.On(goqu.T(aliasBook).Col(store.ColBorrowerID).Eq(goqu.T(aliasBorrower).Col(store.ColID))),
		).
		Select(bookColumns...)
}

func (s *SQLStore) queryBooks(ctx context.Context, query string, args []any, sizeHint int) ([]*models.Book, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Book, 0, sizeHint)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return out, nil
}

type bookRow interface {
	Scan(dest ...any) error
}

func scanBook(row bookRow) (*models.Book, error) {
	var (
		b                 models.Book
		bookID            uuid.UUID
		createdAt         store.Timestamp
		updatedAt         store.Timestamp
		borrowerID        uuid.NullUUID
		borrowerName      sql.NullString
		borrowerEmail     sql.NullString
		borrowerCreatedAt store.Timestamp
	)
	err := row.Scan(
		&bookID, &b.ISBN, &b.Title, &b.Author, &createdAt, &updatedAt,
		&borrowerID, &borrowerName, &borrowerEmail, &borrowerCreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.ID = id.BookID(bookID)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	if borrowerID.Valid {
		b.Borrower = &models.Borrower{
			ID:        id.BorrowerID(borrowerID.UUID),
			Name:      borrowerName.String,
			Email:     borrowerEmail.String,
			CreatedAt: borrowerCreatedAt.Time,
		}
	}
	return &b, nil
}
