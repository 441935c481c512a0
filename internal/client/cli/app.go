// Package cli implements the interactive padre client: a small REPL that
// manages the account database and derives passwords on demand.
package cli

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/padre/internal/accountdb"
	"github.com/dmitrijs2005/padre/internal/client/client"
	"github.com/dmitrijs2005/padre/internal/client/config"
	"github.com/dmitrijs2005/padre/internal/client/models"
	"github.com/dmitrijs2005/padre/internal/client/services"
	"github.com/dmitrijs2005/padre/internal/deriver"
	"github.com/dmitrijs2005/padre/internal/logging"
	"github.com/dmitrijs2005/padre/internal/shared"
)

type App struct {
	config         *config.Config
	accountService services.AccountService
	deriveService  services.DeriveService
	log            logging.Logger
	reader         *bufio.Reader

	// listing holds the accounts shown by the last list/find command, so
	// that show/delete can address them by 1-based index.
	listing []models.Account

	mu       sync.Mutex
	master   []byte
	lastUsed time.Time
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.CachePath)
	if err != nil {
		log.Error(ctx, "error initializing cache", "error", err)
		return nil, err
	}

	parser := accountdb.NewParser(log)
	d := deriver.New(deriver.Params{N: c.ScryptN, R: c.ScryptR, P: c.ScryptP})

	as := services.NewAccountService(repos.DB, repos.Accounts, parser, log)
	ds := services.NewDeriveService(d)

	return &App{
		config:         c,
		accountService: as,
		deriveService:  ds,
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	go a.StartAutoLockWatcher(ctx, a.config.AutoLockInterval)
	a.Root(ctx)
}

// masterKey returns the master passphrase, prompting for it if the session
// is locked. The returned slice is the session copy; callers must not wipe
// or retain it.
func (a *App) masterKey() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.master == nil {
		pw, err := GetPassword(os.Stdout)
		if err != nil {
			return nil, err
		}
		a.master = pw
	}
	a.lastUsed = time.Now()
	return a.master, nil
}

// Lock wipes the master passphrase; the next derivation re-prompts.
func (a *App) Lock(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.master != nil {
		shared.WipeByteArray(a.master)
		a.master = nil
		a.log.Info(ctx, "session locked")
	}
}

func (a *App) isLocked() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.master == nil
}

// StartAutoLockWatcher locks the session once it has been idle for the
// configured interval. A non-positive interval disables auto-locking.
func (a *App) StartAutoLockWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.mu.Lock()
			idle := a.master != nil && time.Since(a.lastUsed) >= interval
			a.mu.Unlock()
			if idle {
				a.Lock(ctx)
			}

		case <-ctx.Done():
			return
		}
	}
}
