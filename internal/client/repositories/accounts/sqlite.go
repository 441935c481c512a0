package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/padre/internal/client/models"
	"github.com/dmitrijs2005/padre/internal/common"
	"github.com/dmitrijs2005/padre/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts a recipe, updating length and charset spec when a recipe
// with the same (domain, username, iteration) already exists.
func (r *SQLiteRepository) Upsert(ctx context.Context, a *models.Account) error {
	query := `INSERT INTO accounts (id, domain, username, iteration, length, charset_spec)
			values (?, ?, ?, ?, ?, ?)
			ON CONFLICT(domain, username, iteration) DO UPDATE SET
				length = excluded.length,
				charset_spec = excluded.charset_spec
	`
	_, err := r.db.ExecContext(ctx, query,
		a.Id, a.Domain, a.Username, a.Iteration, a.Length, a.CharsetSpec)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	query := `SELECT id, domain, username, iteration, length, charset_spec
			FROM accounts ORDER BY domain, username, iteration`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Id, &a.Domain, &a.Username, &a.Iteration, &a.Length, &a.CharsetSpec); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT id, domain, username, iteration, length, charset_spec
			FROM accounts WHERE id = ?`

	var a models.Account
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.Id, &a.Domain, &a.Username, &a.Iteration, &a.Length, &a.CharsetSpec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

func (r *SQLiteRepository) FindByDomain(ctx context.Context, domain string) ([]models.Account, error) {
	query := `SELECT id, domain, username, iteration, length, charset_spec
			FROM accounts WHERE domain = ? ORDER BY username, iteration`

	rows, err := r.db.QueryContext(ctx, query, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Id, &a.Domain, &a.Username, &a.Iteration, &a.Length, &a.CharsetSpec); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
