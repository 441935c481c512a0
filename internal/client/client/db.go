// Package client wires the local SQLite cache: it opens the database, runs
// schema migrations and hands out repositories.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/padre/internal/client/migrations"
	"github.com/dmitrijs2005/padre/internal/client/repositories/accounts"
)

type Repositories struct {
	Accounts accounts.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Accounts: accounts.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
