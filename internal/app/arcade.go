package app

import (
	"context"
	"fmt"
	"io"
	"mini_casino/internal/config"
	"mini_casino/internal/model"

	"go.uber.org/zap"
)

type ArcadeOptions struct {
	Game       model.GameType
	ConfigPath string
	// Pace scales the animations, 0 disables them
	Pace float64
	// Player switches to this player after the last profile is restored
	Player string
	In     io.Reader
	Out    io.Writer
}

// Arcade is the terminal front-end of one game
type Arcade struct {
	opts     ArcadeOptions
	Provider *ArcadeProvider
}

// NewArcade checks the game name, nothing is opened before Run
func NewArcade(opts ArcadeOptions) (*Arcade, error) {
	switch opts.Game {
	case model.GameSlot, model.GamePlinko:
	default:
		return nil, fmt.Errorf("unknown game %q", opts.Game)
	}
	return &Arcade{opts: opts}, nil
}

func (a *Arcade) Run(ctx context.Context) error {
	envErr := config.Load(".env")
	a.Provider = newArcadeProvider(a.opts.Game, a.opts.ConfigPath)

	logger := a.Provider.Logger()
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Debug("no .env file loaded", zap.Error(envErr))
	}
	defer a.Provider.Close()

	if a.opts.Player != "" {
		if err := a.Provider.Profile(ctx).SetPlayerID(ctx, a.opts.Player); err != nil {
			return fmt.Errorf("switch to player %q: %w", a.opts.Player, err)
		}
	}

	return a.Provider.Console(ctx, a.opts.Out, a.opts.Pace).Run(ctx, a.opts.In)
}
