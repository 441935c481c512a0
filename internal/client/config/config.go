package config

import "time"

// Config holds runtime settings for the padre CLI.
//
// Fields:
//   - DatabasePath: path to the flat-text account database.
//   - CachePath: SQLite DSN of the local account cache.
//   - ScryptN, ScryptR, ScryptP: scrypt work factors (CPU/memory cost,
//     block size, parallelization). These are deployment constants, not
//     per-account values; tests inject cheap ones.
//   - AutoLockInterval: how long an idle session keeps the master
//     passphrase in memory before it is wiped.
type Config struct {
	DatabasePath     string
	CachePath        string
	ScryptN          int
	ScryptR          int
	ScryptP          int
	AutoLockInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "accounts.padre"
	c.CachePath = "cache.db"
	c.ScryptN = 1 << 15
	c.ScryptR = 8
	c.ScryptP = 1
	c.AutoLockInterval = 5 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
