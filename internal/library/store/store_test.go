package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarian/internal/platform/database"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: borrowers.email (2067)")))
	assert.False(t, IsUniqueViolation(errors.New("disk I/O error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
	assert.False(t, IsForeignKeyViolation(errors.New("UNIQUE constraint failed")))
}

func TestDialectPlaceholders(t *testing.T) {
	for driver, want := range map[string]string{
		database.DriverPostgres: `SELECT "id" FROM "books" WHERE ("isbn" = $1)`,
		database.DriverSQLite:   "SELECT `id` FROM `books` WHERE (`isbn` = ?)",
	} {
		d := NewDialect(driver)
		query, args, err := d.From(TableBooks).Select(ColID).Where(goqu.C(ColISBN).Eq("123")).Prepared(true).ToSQL()
		require.NoError(t, err)
		assert.Equal(t, want, query)
		assert.Equal(t, []any{"123"}, args)
	}
}

func TestDialectTime(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	assert.Equal(t, "2024-01-02T03:04:05.000000006Z", NewDialect(database.DriverSQLite).Time(at))
	assert.Equal(t, at, NewDialect(database.DriverPostgres).Time(at))
	assert.Equal(t, database.DriverPostgres, NewDialect("").Driver())
}

func TestTimestampScan(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	var ts Timestamp
	require.NoError(t, ts.Scan("2024-01-02T03:04:05Z"))
	assert.True(t, ts.Valid)
	assert.Equal(t, at, ts.Time)

	require.NoError(t, ts.Scan([]byte("2024-01-02T03:04:05Z")))
	assert.Equal(t, at, ts.Time)

	require.NoError(t, ts.Scan(at.In(time.FixedZone("X", 7200))))
	assert.Equal(t, at, ts.Time)

	require.NoError(t, ts.Scan(nil))
	assert.False(t, ts.Valid)

	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(42))
}
