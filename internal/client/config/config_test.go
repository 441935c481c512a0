package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "accounts.padre", cfg.DatabasePath)
	assert.Equal(t, "cache.db", cfg.CachePath)
	assert.Equal(t, 1<<15, cfg.ScryptN)
	assert.Equal(t, 8, cfg.ScryptR)
	assert.Equal(t, 1, cfg.ScryptP)
	assert.Equal(t, 5*time.Minute, cfg.AutoLockInterval)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"padre", "-d", "other.padre", "-n", "1024", "-l", "60"}

	cfg := LoadConfig()
	assert.Equal(t, "other.padre", cfg.DatabasePath)
	assert.Equal(t, 1024, cfg.ScryptN)
	assert.Equal(t, time.Minute, cfg.AutoLockInterval)
	// Untouched fields keep their defaults.
	assert.Equal(t, "cache.db", cfg.CachePath)
	assert.Equal(t, 8, cfg.ScryptR)
}
