package config

import (
	"mini_casino/internal/engine/plinko"
	"mini_casino/internal/engine/slot"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig is the rule set of both games, read from config.yaml
type GameConfig interface {
	SlotIcons() []string
	SlotRules() slot.Rules
	SlotTiming() slot.Timing
	PlinkoRules() plinko.Rules
	PlinkoBoardSize() float64
	PlinkoLayout() plinko.Layout
	PlinkoTick() time.Duration
	LedgerCapacity() int
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
}

// RedisConfig is optional; an empty address disables the leaderboard cache
type RedisConfig interface {
	Address() string
	Password() string
	DB() int
	LeaderboardTTL() time.Duration
}

type LoggerConfig interface {
	Level() string
}

// GatewayConfig points the games at their score servers
type GatewayConfig interface {
	SlotURL() string
	PlinkoURL() string
	Timeout() time.Duration
	QueueSize() int
}

type SnapshotConfig interface {
	Driver() string
	Path() string
}
