// Package services implements the application services of the padre client:
// account database management and password derivation.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/padre/internal/accountdb"
	"github.com/dmitrijs2005/padre/internal/charset"
	"github.com/dmitrijs2005/padre/internal/client/models"
	"github.com/dmitrijs2005/padre/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/padre/internal/common"
	"github.com/dmitrijs2005/padre/internal/dbx"
	"github.com/dmitrijs2005/padre/internal/logging"
)

type AccountService interface {
	// Import parses the flat-text database at path and upserts every record
	// into the cache in one transaction. It returns the number of imported
	// records.
	Import(ctx context.Context, path string) (int, error)

	// List returns all cached recipes.
	List(ctx context.Context) ([]models.Account, error)

	// Find returns the cached recipes for one domain.
	Find(ctx context.Context, domain string) ([]models.Account, error)

	// Add validates and stores a single recipe.
	Add(ctx context.Context, acc accountdb.Account) error

	// Delete removes a cached recipe by id.
	Delete(ctx context.Context, id string) error

	// Export writes all cached recipes to path in the flat-text format.
	Export(ctx context.Context, path string) error
}

type accountService struct {
	db     *sql.DB
	repo   accounts.Repository
	parser *accountdb.Parser
	log    logging.Logger
}

func NewAccountService(db *sql.DB, repo accounts.Repository, parser *accountdb.Parser, log logging.Logger) AccountService {
	return &accountService{db: db, repo: repo, parser: parser, log: log}
}

func (s *accountService) Import(ctx context.Context, path string) (int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read database: %w", err)
	}

	parsed, err := s.parser.Parse(ctx, buf)
	if err != nil {
		return 0, fmt.Errorf("failed to parse database: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := accounts.NewSQLiteRepository(tx)
		for i := range parsed {
			a := &models.Account{Id: uuid.NewString(), Account: parsed[i]}
			if err := repo.Upsert(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to store accounts: %w", err)
	}

	s.log.Info(ctx, "imported accounts", "path", path, "count", len(parsed))
	return len(parsed), nil
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return rows, nil
}

func (s *accountService) Find(ctx context.Context, domain string) ([]models.Account, error) {
	rows, err := s.repo.FindByDomain(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	return rows, nil
}

func (s *accountService) Add(ctx context.Context, acc accountdb.Account) error {
	if strings.TrimSpace(acc.Domain) == "" || strings.TrimSpace(acc.Username) == "" {
		return fmt.Errorf("%w: domain and username are required", common.ErrorValidation)
	}
	if acc.Length <= 0 {
		return common.ErrInvalidLength
	}
	// The file format cannot represent these characters in the first three
	// fields, and the deriver's unseparated salt relies on that.
	for _, f := range []string{acc.Domain, acc.Username, acc.Iteration} {
		if strings.ContainsAny(f, ",\n") {
			return fmt.Errorf("%w: field %q may not contain ',' or a newline", common.ErrorValidation, f)
		}
	}
	if strings.Contains(acc.CharsetSpec, "\n") {
		return fmt.Errorf("%w: charset spec may not contain a newline", common.ErrorValidation)
	}
	// Reject unresolvable specs at add time rather than at first derive.
	if _, err := charset.Compile(acc.CharsetSpec); err != nil {
		return err
	}

	a := &models.Account{Id: uuid.NewString(), Account: acc}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (s *accountService) Export(ctx context.Context, path string) error {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	recs := make([]accountdb.Account, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, r.Account)
	}

	if err := os.WriteFile(path, accountdb.Marshal(recs), 0o600); err != nil {
		return fmt.Errorf("failed to write database: %w", err)
	}
	return nil
}
