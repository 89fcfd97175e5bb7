package env

import (
	"fmt"
	"mini_casino/internal/config"
	"time"

	envparse "github.com/caarlos0/env/v11"
)

type redisConfig struct {
	addr     string
	password string
	db       int
	ttl      time.Duration
}

type redisEnv struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"LEADERBOARD_TTL" envDefault:"30s"`
}

// NewRedisConfig reads the optional leaderboard cache settings
func NewRedisConfig() (config.RedisConfig, error) {
	raw, err := envparse.ParseAs[redisEnv]()
	if err != nil {
		return nil, fmt.Errorf("parse redis env: %w", err)
	}

	return &redisConfig{
		addr:     raw.Addr,
		password: raw.Password,
		db:       raw.DB,
		ttl:      raw.TTL,
	}, nil
}

func (cfg *redisConfig) Address() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}

func (cfg *redisConfig) LeaderboardTTL() time.Duration {
	return cfg.ttl
}
