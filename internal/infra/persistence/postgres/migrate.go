package postgres

import (
	"context"
	"database/sql"

	"pizarra/internal/errors"
	"pizarra/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded schema migrations to db.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply PostgreSQL migrations")
	}

	return nil
}
