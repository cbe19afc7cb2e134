package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/zeebo/omnim"
)

// config is read from the environment.
type config struct {
	Mode       omnim.Mode `env:"OMNIM_MODE" envDefault:"pcg32"`
	Seed       uint64     `env:"OMNIM_SEED" envDefault:"0"`
	SeedPhrase string     `env:"OMNIM_SEED_PHRASE"`
	Count      int        `env:"OMNIM_COUNT" envDefault:"10"`
	Min        int64      `env:"OMNIM_MIN" envDefault:"0"`
	Max        int64      `env:"OMNIM_MAX" envDefault:"100"`
	FMin       float64    `env:"OMNIM_FMIN" envDefault:"0"`
	FMax       float64    `env:"OMNIM_FMAX" envDefault:"1"`
	LogLevel   string     `env:"OMNIM_LOG_LEVEL" envDefault:"info"`
}

// loadConfig parses the config from the environment, resolving the seed.
func loadConfig() (cfg config, err error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, Error.Wrap(err)
	}
	if cfg.Count < 0 {
		return cfg, Error.New("invalid count: %d", cfg.Count)
	}
	if cfg.SeedPhrase != "" {
		cfg.Seed = omnim.SeedString(cfg.SeedPhrase)
	}
	return cfg, nil
}

// level returns the zerolog level named by the config.
func (c config) level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, Error.Wrap(err)
	}
	return lvl, nil
}
