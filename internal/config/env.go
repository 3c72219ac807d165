package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for the environment layer. Pointer fields stay
// nil when the variable is unset, so zero values never clobber earlier
// layers.
type envConfig struct {
	DatabaseDSN      *string        `env:"REDLINE_DATABASE_DSN"`
	BcryptCost       *int           `env:"REDLINE_BCRYPT_COST"`
	MaxLoginAttempts *int           `env:"REDLINE_MAX_LOGIN_ATTEMPTS"`
	LockoutDuration  *time.Duration `env:"REDLINE_LOCKOUT_DURATION"`
	SessionTimeout   *time.Duration `env:"REDLINE_SESSION_TIMEOUT"`
	SessionSecret    *string        `env:"REDLINE_SESSION_SECRET"`
	HeatDecayRate    *float64       `env:"REDLINE_HEAT_DECAY_RATE"`
	EventChance      *float64       `env:"REDLINE_EVENT_CHANCE"`
	StartingCredits  *int64         `env:"REDLINE_STARTING_CREDITS"`
	LogLevel         *string        `env:"REDLINE_LOG_LEVEL"`
}

// parseEnv overlays Config with values from REDLINE_* environment variables.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabaseDSN != nil {
		cfg.DatabaseDSN = *ec.DatabaseDSN
	}
	if ec.BcryptCost != nil {
		cfg.BcryptCost = *ec.BcryptCost
	}
	if ec.MaxLoginAttempts != nil {
		cfg.MaxLoginAttempts = *ec.MaxLoginAttempts
	}
	if ec.LockoutDuration != nil {
		cfg.LockoutDuration = *ec.LockoutDuration
	}
	if ec.SessionTimeout != nil {
		cfg.SessionTimeout = *ec.SessionTimeout
	}
	if ec.SessionSecret != nil {
		cfg.SessionSecret = *ec.SessionSecret
	}
	if ec.HeatDecayRate != nil {
		cfg.HeatDecayRate = *ec.HeatDecayRate
	}
	if ec.EventChance != nil {
		cfg.EventChance = *ec.EventChance
	}
	if ec.StartingCredits != nil {
		cfg.StartingCredits = *ec.StartingCredits
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
}
