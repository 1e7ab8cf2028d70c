// Package config loads decksim settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Sim configures a soak run. Every knob has a usable default, so an
// empty environment runs a short balanced soak of the standard pack.
type Sim struct {
	Episodes int    `env:"DECKSIM_EPISODES" envDefault:"200"`
	Ops      int    `env:"DECKSIM_OPS" envDefault:"500"`
	Workers  int    `env:"DECKSIM_WORKERS" envDefault:"0"` // 0 means one per CPU
	Seed     int64  `env:"DECKSIM_SEED" envDefault:"0"`    // 0 means pick one at random
	Profile  string `env:"DECKSIM_PROFILE" envDefault:"balanced"`
	Preset   string `env:"DECKSIM_PRESET" envDefault:"standard"`
	Jokers   int    `env:"DECKSIM_JOKERS" envDefault:"0"`
	LogMode  string `env:"DECKSIM_LOG_MODE" envDefault:"dev"`
}

// Load parses and validates the configuration.
func Load() (Sim, error) {
	var cfg Sim
	if err := env.Parse(&cfg); err != nil {
		return Sim{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Sim{}, err
	}
	return cfg, nil
}

func (c Sim) validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	if c.Ops <= 0 {
		return fmt.Errorf("ops per episode must be positive, got %d", c.Ops)
	}
	if c.Jokers < 0 {
		return fmt.Errorf("joker count must not be negative, got %d", c.Jokers)
	}
	switch c.LogMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("log mode must be dev or prod, got %q", c.LogMode)
	}
	return nil
}
