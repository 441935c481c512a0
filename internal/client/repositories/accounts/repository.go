// Package accounts provides the local cache repository for derivation
// recipes.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/padre/internal/client/models"
)

// Repository is the storage contract for cached account recipes.
type Repository interface {
	// Upsert inserts a by (domain, username, iteration) unique recipe,
	// updating length and charset spec on conflict.
	Upsert(ctx context.Context, a *models.Account) error

	// GetAll returns every cached recipe ordered by domain, username,
	// iteration.
	GetAll(ctx context.Context) ([]models.Account, error)

	// GetByID returns one recipe or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// FindByDomain returns all recipes whose domain matches exactly.
	FindByDomain(ctx context.Context, domain string) ([]models.Account, error)

	// DeleteByID removes one recipe. Deleting an unknown id is not an error.
	DeleteByID(ctx context.Context, id string) error
}
