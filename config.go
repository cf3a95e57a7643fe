package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config is parsed from the environment after an optional .env load.
type config struct {
	// Address for -serve mode. The interactive command ignores it.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:"localhost:3000"`
}

// loadConfig loads .env when present (missing file is fine — real env vars
// still apply) and parses the typed config from the environment.
func loadConfig() (config, error) {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
