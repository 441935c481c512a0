package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/padre/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the flat-text account database
//	-s string   SQLite DSN of the local account cache
//	-n int      scrypt CPU/memory cost (must be a power of two > 1)
//	-r int      scrypt block size
//	-p int      scrypt parallelization factor
//	-l int      auto-lock interval in seconds
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-n", "-r", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the account database")
	fs.StringVar(&cfg.CachePath, "s", cfg.CachePath, "SQLite DSN of the local account cache")
	fs.IntVar(&cfg.ScryptN, "n", cfg.ScryptN, "scrypt CPU/memory cost")
	fs.IntVar(&cfg.ScryptR, "r", cfg.ScryptR, "scrypt block size")
	fs.IntVar(&cfg.ScryptP, "p", cfg.ScryptP, "scrypt parallelization factor")
	autoLockInterval := fs.Int("l", int(cfg.AutoLockInterval.Seconds()), "auto-lock interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AutoLockInterval = time.Duration(*autoLockInterval) * time.Second
}
