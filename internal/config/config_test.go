package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.NotEmpty(t, c.DatabaseDSN)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, 5, c.MaxLoginAttempts)
	assert.Equal(t, 15*time.Minute, c.LockoutDuration)
	assert.Equal(t, 30*time.Minute, c.SessionTimeout)
	assert.Len(t, c.SessionSecret, 64, "32 random bytes hex-encoded")
	assert.Equal(t, 1.0, c.HeatDecayRate)
	assert.Equal(t, 0.1, c.EventChance)
	assert.EqualValues(t, 1000, c.StartingCredits)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"redline"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LockoutDuration)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("REDLINE_MAX_LOGIN_ATTEMPTS", "3")
	t.Setenv("REDLINE_LOCKOUT_DURATION", "5m")
	t.Setenv("REDLINE_HEAT_DECAY_RATE", "2.5")
	t.Setenv("REDLINE_SESSION_SECRET", "sekret")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 3, cfg.MaxLoginAttempts)
	assert.Equal(t, 5*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, 2.5, cfg.HeatDecayRate)
	assert.Equal(t, "sekret", cfg.SessionSecret)
	// untouched fields keep their defaults
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.EqualValues(t, 1000, cfg.StartingCredits)
}
