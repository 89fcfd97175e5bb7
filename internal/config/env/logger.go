package env

import (
	"mini_casino/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type loggerConfig struct {
	level string
}

type loggerEnv struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	raw, err := envparse.ParseAs[loggerEnv]()
	if err != nil {
		return nil, err
	}
	return &loggerConfig{level: raw.Level}, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}
