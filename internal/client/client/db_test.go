package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/padre/internal/accountdb"
	"github.com/dmitrijs2005/padre/internal/client/models"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_MigratesAndServes(t *testing.T) {
	ctx := context.Background()

	repos, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	a := &models.Account{
		Id: "id1",
		Account: accountdb.Account{
			Domain:   "example.com",
			Username: "alice",
			Length:   8,
		},
	}
	require.NoError(t, repos.Accounts.Upsert(ctx, a))

	rows, err := repos.Accounts.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "example.com", rows[0].Domain)
}
