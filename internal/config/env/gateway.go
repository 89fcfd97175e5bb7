package env

import (
	"errors"
	"fmt"
	"mini_casino/internal/config"
	"net/url"
	"time"

	envparse "github.com/caarlos0/env/v11"
)

type gatewayConfig struct {
	slotURL   string
	plinkoURL string
	timeout   time.Duration
	queueSize int
}

type gatewayEnv struct {
	SlotURL   string        `env:"SLOT_SERVER_URL" envDefault:"http://localhost:5000"`
	PlinkoURL string        `env:"PLINKO_SERVER_URL" envDefault:"http://localhost:5001"`
	Timeout   time.Duration `env:"SERVER_TIMEOUT" envDefault:"0s"` // 0 = no client timeout
	QueueSize int           `env:"SAVE_QUEUE_SIZE" envDefault:"64"`
}

// NewGatewayConfig reads the score server URLs of both games and the save queue size
func NewGatewayConfig() (config.GatewayConfig, error) {
	raw, err := envparse.ParseAs[gatewayEnv]()
	if err != nil {
		return nil, fmt.Errorf("parse gateway env: %w", err)
	}
	for _, u := range []string{raw.SlotURL, raw.PlinkoURL} {
		if _, err := url.ParseRequestURI(u); err != nil {
			return nil, fmt.Errorf("invalid score server url %q: %w", u, err)
		}
	}
	if raw.QueueSize <= 0 {
		return nil, errors.New("save queue size must be positive")
	}

	return &gatewayConfig{
		slotURL:   raw.SlotURL,
		plinkoURL: raw.PlinkoURL,
		timeout:   raw.Timeout,
		queueSize: raw.QueueSize,
	}, nil
}

func (cfg *gatewayConfig) SlotURL() string {
	return cfg.slotURL
}

func (cfg *gatewayConfig) PlinkoURL() string {
	return cfg.plinkoURL
}

func (cfg *gatewayConfig) Timeout() time.Duration {
	return cfg.timeout
}

func (cfg *gatewayConfig) QueueSize() int {
	return cfg.queueSize
}
