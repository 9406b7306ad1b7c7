package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var ErrNilDB = errors.New("db is nil")

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"pgx":     {dialect: "pgx", dir: "postgres"},
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for the given driver.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
