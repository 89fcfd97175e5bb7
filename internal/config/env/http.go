package env

import (
	"errors"
	"fmt"
	"mini_casino/internal/config"
	"time"

	envparse "github.com/caarlos0/env/v11"
)

type httpConfig struct {
	host            string
	port            string
	shutdownTimeout time.Duration
}

type httpEnv struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" envDefault:"5000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	raw, err := envparse.ParseAs[httpEnv]()
	if err != nil {
		return nil, fmt.Errorf("parse http env: %w", err)
	}
	if len(raw.Port) == 0 {
		return nil, errors.New("http port not found")
	}

	return &httpConfig{
		host:            raw.Host,
		port:            raw.Port,
		shutdownTimeout: raw.ShutdownTimeout,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.host + ":" + cfg.port
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.shutdownTimeout
}
