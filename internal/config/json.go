package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/redline/internal/flagx"
	"github.com/dmitrijs2005/redline/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields are
// pointers so that keys absent from the file leave the running Config
// untouched. Durations accept either strings like "15m" or integer
// nanoseconds via timex.Duration.
type JsonConfig struct {
	DatabaseDSN      *string         `json:"database_dsn"`
	BcryptCost       *int            `json:"bcrypt_cost"`
	MaxLoginAttempts *int            `json:"max_login_attempts"`
	LockoutDuration  *timex.Duration `json:"lockout_duration"`
	SessionTimeout   *timex.Duration `json:"session_timeout"`
	SessionSecret    *string         `json:"session_secret"`
	HeatDecayRate    *float64        `json:"heat_decay_rate"`
	EventChance      *float64        `json:"event_chance"`
	StartingCredits  *int64          `json:"starting_credits"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (flagx.JsonConfigFlags);
// when no path is given the function is a no-op. Read or unmarshal errors
// panic (the binary cannot start from a broken config).
//
// Intended usage is: defaults -> parseJson -> parseEnv -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
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

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.BcryptCost != nil {
		cfg.BcryptCost = *jc.BcryptCost
	}
	if jc.MaxLoginAttempts != nil {
		cfg.MaxLoginAttempts = *jc.MaxLoginAttempts
	}
	if jc.LockoutDuration != nil {
		cfg.LockoutDuration = time.Duration(jc.LockoutDuration.Duration)
	}
	if jc.SessionTimeout != nil {
		cfg.SessionTimeout = time.Duration(jc.SessionTimeout.Duration)
	}
	if jc.SessionSecret != nil {
		cfg.SessionSecret = *jc.SessionSecret
	}
	if jc.HeatDecayRate != nil {
		cfg.HeatDecayRate = *jc.HeatDecayRate
	}
	if jc.EventChance != nil {
		cfg.EventChance = *jc.EventChance
	}
	if jc.StartingCredits != nil {
		cfg.StartingCredits = *jc.StartingCredits
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
