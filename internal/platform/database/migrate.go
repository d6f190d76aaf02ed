package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"librarian/migrations"
)

// Migrate executes every *.up.sql file for the pool's driver in lexical order.
// Migrations are written with IF NOT EXISTS so re-running them is safe.
func (p *Pool) Migrate(ctx context.Context) ([]string, error) {
	if p == nil || p.db == nil {
		return nil, fmt.Errorf("database not configured")
	}

	files, err := MigrationFiles(p.cfg.Driver)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", file, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := p.db.ExecContext(ctx, stmt); err != nil {
				return nil, fmt.Errorf("execute migration %s: %w", file, err)
			}
		}
	}
	return files, nil
}

// MigrationFiles lists the embedded up-migrations for a driver.
func MigrationFiles(driver string) ([]string, error) {
	entries, err := fs.ReadDir(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, driver+"/"+e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// splitStatements breaks a migration into single statements; the sqlite
// driver executes only the first statement of a multi-statement string.
func splitStatements(content string) []string {
	var out []string
	for _, stmt := range strings.Split(stripComments(content), ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stripComments(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
