package services

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/padre/internal/accountdb"
	"github.com/dmitrijs2005/padre/internal/deriver"
)

// Result is the outcome of deriving one account in a batch. A failing
// account does not disturb the others; its Err is set and Password is empty.
type Result struct {
	Account  accountdb.Account
	Password string
	Err      error
}

type DeriveService interface {
	// Derive produces the password for a single recipe.
	Derive(ctx context.Context, master []byte, acc *accountdb.Account) (string, error)

	// DeriveAll derives every recipe concurrently and returns one Result
	// per account, in input order.
	DeriveAll(ctx context.Context, master []byte, accs []accountdb.Account) []Result
}

type deriveService struct {
	deriver *deriver.Deriver
}

func NewDeriveService(d *deriver.Deriver) DeriveService {
	return &deriveService{deriver: d}
}

func (s *deriveService) Derive(ctx context.Context, master []byte, acc *accountdb.Account) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.deriver.ForAccount(master, acc)
}

// DeriveAll fans the batch out across a bounded worker group. Each account's
// derivation is a pure function of its inputs with no shared mutable state,
// so no coordination beyond the results slice is needed. Per-account
// failures land in the corresponding Result; cancellation marks the
// remaining accounts with ctx.Err().
func (s *deriveService) DeriveAll(ctx context.Context, master []byte, accs []accountdb.Account) []Result {
	results := make([]Result, len(accs))

	g := &errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range accs {
		g.Go(func() error {
			results[i].Account = accs[i]
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Password, results[i].Err = s.deriver.ForAccount(master, &accs[i])
			return nil
		})
	}

	_ = g.Wait()
	return results
}
