// Package migrations embeds the database schema and seed data and applies
// them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path"

	"github.com/pressly/goose/v3"
)

// Dialects with embedded migrations. The names match the database/sql
// driver names registered by pgx and go-sqlite3.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var migrationDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite3",
}

//go:embed postgres sqlite3
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// Migrate brings the schema up to the latest version for dialect.
func Migrate(db *sql.DB, dialect string) error {
	dir, err := prepare(db, dialect)
	if err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Seed inserts the demo cash cards. It is idempotent and does not touch
// the goose version table.
func Seed(db *sql.DB, dialect string) error {
	dir, err := prepare(db, dialect)
	if err != nil {
		return err
	}

	if err := goose.Up(db, path.Join(dir, "seed"), goose.WithNoVersioning()); err != nil {
		return fmt.Errorf("migration error while seeding: %w", err)
	}

	return nil
}

func prepare(db *sql.DB, dialect string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, ok := migrationDirs[dialect]
	if !ok {
		return "", fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	return dir, nil
}
