package app

import (
	"context"
	"io"
	"mini_casino/internal/api/console"
	"mini_casino/internal/client"
	"mini_casino/internal/client/score"
	"mini_casino/internal/config"
	"mini_casino/internal/config/env"
	"mini_casino/internal/engine"
	plinkoEngine "mini_casino/internal/engine/plinko"
	slotEngine "mini_casino/internal/engine/slot"
	"mini_casino/internal/logger"
	"mini_casino/internal/model"
	"mini_casino/internal/repository"
	"mini_casino/internal/repository/snapshot_repo"
	"mini_casino/internal/service"
	plinkoServ "mini_casino/internal/service/plinko"
	"mini_casino/internal/service/profile"
	slotServ "mini_casino/internal/service/slot"

	"go.uber.org/zap"
)

// ArcadeProvider builds the terminal side of one game lazily, like ServiceProvider
type ArcadeProvider struct {
	game       model.GameType
	configPath string

	loggerCfg config.LoggerConfig
	logger    *zap.Logger

	gameCfg     config.GameConfig
	gatewayCfg  config.GatewayConfig
	snapshotCfg config.SnapshotConfig

	rng       engine.RandomSource
	store     repository.SnapshotRepository
	gateway   client.ScoreClient
	profile   service.ProfileService
	slotServ  service.SlotService
	plinkoSrv service.PlinkoService
}

func newArcadeProvider(game model.GameType, configPath string) *ArcadeProvider {
	return &ArcadeProvider{game: game, configPath: configPath}
}

func (ap *ArcadeProvider) LoggerCfg() config.LoggerConfig {
	if ap.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		ap.loggerCfg = cfg
	}
	return ap.loggerCfg
}

func (ap *ArcadeProvider) Logger() *zap.Logger {
	if ap.logger == nil {
		l, err := logger.New(ap.LoggerCfg().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		ap.logger = l.With(zap.String("game", string(ap.game)))
	}
	return ap.logger
}

func (ap *ArcadeProvider) GameCfg() config.GameConfig {
	if ap.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(ap.configPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		ap.gameCfg = cfg
	}
	return ap.gameCfg
}

func (ap *ArcadeProvider) GatewayCfg() config.GatewayConfig {
	if ap.gatewayCfg == nil {
		cfg, err := env.NewGatewayConfig()
		if err != nil {
			panic("failed to get gateway config: " + err.Error())
		}
		ap.gatewayCfg = cfg
	}
	return ap.gatewayCfg
}

func (ap *ArcadeProvider) SnapshotCfg() config.SnapshotConfig {
	if ap.snapshotCfg == nil {
		cfg, err := env.NewSnapshotConfig()
		if err != nil {
			panic("failed to get snapshot config: " + err.Error())
		}
		ap.snapshotCfg = cfg
	}
	return ap.snapshotCfg
}

func (ap *ArcadeProvider) RNG() engine.RandomSource {
	if ap.rng == nil {
		ap.rng = engine.DefaultRNG()
	}
	return ap.rng
}

func (ap *ArcadeProvider) SnapshotStore() repository.SnapshotRepository {
	if ap.store == nil {
		cfg := ap.SnapshotCfg()
		var (
			store repository.SnapshotRepository
			err   error
		)
		switch cfg.Driver() {
		case env.SnapshotDriverBolt:
			store, err = snapshot_repo.OpenBolt(cfg.Path())
		default:
			store, err = snapshot_repo.OpenSQLite(cfg.Path(), ap.Logger())
		}
		if err != nil {
			panic("failed to open snapshot store: " + err.Error())
		}
		ap.Logger().Info("snapshot store opened", zap.String("driver", cfg.Driver()), zap.String("path", cfg.Path()))
		ap.store = store
	}
	return ap.store
}

// Gateway talks to the score server of the selected game
func (ap *ArcadeProvider) Gateway() client.ScoreClient {
	if ap.gateway == nil {
		cfg := ap.GatewayCfg()
		url := cfg.SlotURL()
		if ap.game == model.GamePlinko {
			url = cfg.PlinkoURL()
		}
		ap.gateway = score.New(url, cfg.Timeout())
	}
	return ap.gateway
}

func (ap *ArcadeProvider) Profile(ctx context.Context) service.ProfileService {
	if ap.profile == nil {
		p := profile.NewProfileService(ap.SnapshotStore(), ap.Gateway(), profile.Options{
			GameType:       ap.game,
			LedgerCapacity: ap.GameCfg().LedgerCapacity(),
			QueueSize:      ap.GatewayCfg().QueueSize(),
			Logger:         ap.Logger(),
		})
		if err := p.Load(ctx); err != nil {
			ap.Logger().Warn("could not restore last profile", zap.Error(err))
		}
		ap.profile = p
	}
	return ap.profile
}

func (ap *ArcadeProvider) SlotService(ctx context.Context) service.SlotService {
	if ap.slotServ == nil {
		cfg := ap.GameCfg()
		reels := slotEngine.NewReels(cfg.SlotIcons(), cfg.SlotTiming())
		ap.slotServ = slotServ.NewSlotService(reels, cfg.SlotRules(), ap.RNG(), ap.Profile(ctx), ap.Logger())
	}
	return ap.slotServ
}

func (ap *ArcadeProvider) PlinkoService(ctx context.Context) service.PlinkoService {
	if ap.plinkoSrv == nil {
		cfg := ap.GameCfg()
		board := plinkoEngine.NewBoard(cfg.PlinkoBoardSize(), cfg.PlinkoLayout())
		sim := plinkoEngine.NewSimulator(board, cfg.PlinkoRules(), ap.RNG())
		ap.plinkoSrv = plinkoServ.NewPlinkoService(sim, ap.Profile(ctx), ap.Logger())
	}
	return ap.plinkoSrv
}

func (ap *ArcadeProvider) Console(ctx context.Context, out io.Writer, pace float64) *console.Console {
	deps := console.HandlerDeps{
		Game:    ap.game,
		Profile: ap.Profile(ctx),
		Pace:    pace,
		Tick:    ap.GameCfg().PlinkoTick(),
		Out:     out,
		Logger:  ap.Logger(),
	}
	switch ap.game {
	case model.GamePlinko:
		deps.Plinko = ap.PlinkoService(ctx)
	default:
		deps.Slot = ap.SlotService(ctx)
	}
	return console.NewConsole(deps)
}

// Close drains the save queue before the store goes away
func (ap *ArcadeProvider) Close() {
	if ap.profile != nil {
		_ = ap.profile.Close()
	}
	if ap.store != nil {
		if err := ap.store.Close(); err != nil {
			ap.Logger().Warn("snapshot store close failed", zap.Error(err))
		}
	}
}
