// Package store holds helpers shared by the book and borrower SQL stores.
package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/jackc/pgx/v5/pgconn"

	"librarian/internal/platform/database"
)

// Table and column names shared by both dialects.
const (
	TableBooks     = "books"
	TableBorrowers = "borrowers"

	ColSeq        = "seq"
	ColID         = "id"
	ColName       = "name"
	ColEmail      = "email"
	ColISBN       = "isbn"
	ColTitle      = "title"
	ColAuthor     = "author"
	ColBorrowerID = "borrower_id"
	ColCreatedAt  = "created_at"
	ColUpdatedAt  = "updated_at"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Dialect adapts query building and value encoding to one database driver.
type Dialect struct {
	driver string
	goqu.DialectWrapper
}

// NewDialect returns the dialect for a database.Pool driver name.
func NewDialect(driver string) Dialect {
	if driver == database.DriverSQLite {
		return Dialect{driver: driver, DialectWrapper: goqu.Dialect("sqlite3")}
	}
	return Dialect{driver: database.DriverPostgres, DialectWrapper: goqu.Dialect("postgres")}
}

func (d Dialect) Driver() string {
	return d.driver
}

// Time encodes a timestamp for storage. SQLite columns hold RFC3339 text.
func (d Dialect) Time(t time.Time) any {
	if d.driver == database.DriverSQLite {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t.UTC()
}

// IsUniqueViolation reports unique constraint failures from either driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports foreign key failures from either driver.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// Timestamp scans native timestamps as well as RFC3339 text columns.
// A NULL leaves Valid false.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v.UTC(), true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time, nil
}

func (t *Timestamp) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	t.Time, t.Valid = parsed.UTC(), true
	return nil
}
