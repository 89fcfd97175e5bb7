package env

import (
	"fmt"
	"mini_casino/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

const (
	SnapshotDriverSQLite = "sqlite"
	SnapshotDriverBolt   = "bolt"
)

type snapshotConfig struct {
	driver string
	path   string
}

type snapshotEnv struct {
	Driver string `env:"SNAPSHOT_DRIVER" envDefault:"sqlite"`
	Path   string `env:"SNAPSHOT_PATH" envDefault:"arcade.db"`
}

// NewSnapshotConfig selects the local snapshot driver and file
func NewSnapshotConfig() (config.SnapshotConfig, error) {
	raw, err := envparse.ParseAs[snapshotEnv]()
	if err != nil {
		return nil, err
	}
	switch raw.Driver {
	case SnapshotDriverSQLite, SnapshotDriverBolt:
	default:
		return nil, fmt.Errorf("unknown snapshot driver %q", raw.Driver)
	}
	if raw.Path == "" {
		return nil, fmt.Errorf("snapshot path not found")
	}

	return &snapshotConfig{driver: raw.Driver, path: raw.Path}, nil
}

func (cfg *snapshotConfig) Driver() string {
	return cfg.driver
}

func (cfg *snapshotConfig) Path() string {
	return cfg.path
}
