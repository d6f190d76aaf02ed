//go:build integration

package borrower

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"librarian/internal/platform/database"
	"librarian/pkg/testutil/containers"
)

func TestPostgresStore(t *testing.T) {
	pg := containers.GetManager().GetPostgres(t)

	suite.Run(t, &StoreSuite{newStore: func(t *testing.T) borrowerStore {
		if err := pg.TruncateLibraryTables(context.Background()); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return NewSQL(pg.DB, database.DriverPostgres)
	}})
}
