package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/padre/internal/flagx"
	"github.com/dmitrijs2005/padre/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath     string         `json:"database_path"`
	CachePath        string         `json:"cache_path"`
	ScryptN          int            `json:"scrypt_n"`
	ScryptR          int            `json:"scrypt_r"`
	ScryptP          int            `json:"scrypt_p"`
	AutoLockInterval timex.Duration `json:"auto_lock_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values are treated
//     as "not specified" and leave the defaults in place.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CachePath != "" {
		cfg.CachePath = jc.CachePath
	}
	if jc.ScryptN != 0 {
		cfg.ScryptN = jc.ScryptN
	}
	if jc.ScryptR != 0 {
		cfg.ScryptR = jc.ScryptR
	}
	if jc.ScryptP != 0 {
		cfg.ScryptP = jc.ScryptP
	}
	if jc.AutoLockInterval.Duration != 0 {
		cfg.AutoLockInterval = time.Duration(jc.AutoLockInterval.Duration)
	}
}
