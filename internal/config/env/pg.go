package env

import (
	"errors"
	"mini_casino/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type pgConfig struct {
	dsn string
}

type pgEnv struct {
	DSN string `env:"PG_DSN"`
}

func NewPGConfig() (config.PGConfig, error) {
	raw, err := envparse.ParseAs[pgEnv]()
	if err != nil {
		return nil, err
	}
	if len(raw.DSN) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &pgConfig{
		dsn: raw.DSN,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
