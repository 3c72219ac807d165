// Package config assembles the runtime settings of the redline engine from
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/redline/internal/cryptox"
)

// Config holds runtime settings for the redline game engine.
//
// Units: durations are time.Duration; HeatDecayRate is heat points shed per
// minute of wall-clock time; EventChance is the per-command probability of a
// world event in [0,1].
type Config struct {
	DatabaseDSN      string
	BcryptCost       int
	MaxLoginAttempts int
	LockoutDuration  time.Duration
	SessionTimeout   time.Duration
	SessionSecret    string
	HeatDecayRate    float64
	EventChance      float64
	StartingCredits  int64
	LogLevel         string
}

// LoadDefaults populates c with production defaults. The database lands in
// the platform user-data directory; the session secret is random per process
// unless overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = defaultDatabasePath()
	c.BcryptCost = 12
	c.MaxLoginAttempts = 5
	c.LockoutDuration = 15 * time.Minute
	c.SessionTimeout = 30 * time.Minute
	c.SessionSecret = cryptox.MakeRandHexString(32)
	c.HeatDecayRate = 1.0
	c.EventChance = 0.1
	c.StartingCredits = 1000
	c.LogLevel = "info"
}

// defaultDatabasePath resolves $XDG_DATA_HOME/redline/redline.db, falling
// back to ~/.local/share and finally the working directory.
func defaultDatabasePath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "redline.db"
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "redline", "redline.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
