package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Up applies every *.up.sql file in name order. The scripts use IF NOT EXISTS,
// so running Up on an already migrated database is a no-op.
func Up(ctx context.Context, db execer) error {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			slog.Info(err.Error(), "migration", name)
			return fmt.Errorf("migration %s: %w", strings.TrimSuffix(name, ".up.sql"), err)
		}
	}

	return nil
}
