package app

import (
	"context"
	scoreAPI "mini_casino/internal/api/score"
	"mini_casino/internal/config"
	"mini_casino/internal/config/env"
	"mini_casino/internal/logger"
	"mini_casino/internal/middleware"
	"mini_casino/internal/migrations"
	"mini_casino/internal/repository"
	"mini_casino/internal/repository/leaderboard_cache_repo"
	"mini_casino/internal/repository/migrate"
	"mini_casino/internal/repository/score_repo"
	"mini_casino/internal/repository/score_stats_repo"
	"mini_casino/internal/service"
	"mini_casino/internal/service/score"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logging
	loggerCfg config.LoggerConfig
	logger    *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Leaderboard cache
	redisCfg         config.RedisConfig
	redisClient      *redis.Client
	leaderboardCache repository.LeaderboardCacheRepository

	// Score bits
	scoreRepo      repository.ScoreRepository
	scoreStatsRepo repository.ScoreStatsRepository
	scoreServ      service.ScoreService
	scoreHand      *scoreAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

// newServiceProvider returns an empty provider, every dependency is built on first use
func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LoggerCfg().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// Migrate brings the score schema up to date
func (sp *ServiceProvider) Migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(sp.DBClient(ctx))
	defer db.Close()
	return migrate.Migrate(db, migrations.Postgres(), sq.Dollar, sp.Logger())
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

// LeaderboardCache falls back to no caching when Redis is not configured or not reachable
func (sp *ServiceProvider) LeaderboardCache(ctx context.Context) repository.LeaderboardCacheRepository {
	if sp.leaderboardCache == nil {
		cfg := sp.RedisCfg()
		if cfg.Address() == "" {
			sp.leaderboardCache = leaderboard_cache_repo.NewNoopLeaderboardCache()
			return sp.leaderboardCache
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			sp.Logger().Warn("redis unreachable, leaderboard cache disabled", zap.Error(err))
			_ = rdb.Close()
			sp.leaderboardCache = leaderboard_cache_repo.NewNoopLeaderboardCache()
			return sp.leaderboardCache
		}

		sp.Logger().Info("connected to redis", zap.String("addr", cfg.Address()))
		sp.redisClient = rdb
		sp.leaderboardCache = leaderboard_cache_repo.NewLeaderboardCacheRepository(rdb, cfg.LeaderboardTTL())
	}
	return sp.leaderboardCache
}

func (sp *ServiceProvider) ScoreRepository(ctx context.Context) repository.ScoreRepository {
	if sp.scoreRepo == nil {
		sp.scoreRepo = score_repo.NewScoreRepository(sp.DBClient(ctx))
	}
	return sp.scoreRepo
}

func (sp *ServiceProvider) ScoreStatsRepository() repository.ScoreStatsRepository {
	if sp.scoreStatsRepo == nil {
		sp.scoreStatsRepo = score_stats_repo.NewScoreStatsRepository(score_stats_repo.DefaultWindowSize)
	}
	return sp.scoreStatsRepo
}

func (sp *ServiceProvider) ScoreService(ctx context.Context) service.ScoreService {
	if sp.scoreServ == nil {
		sp.scoreServ = score.NewScoreService(
			sp.ScoreRepository(ctx),
			sp.ScoreStatsRepository(),
			sp.LeaderboardCache(ctx),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.scoreServ
}

func (sp *ServiceProvider) ScoreHandler(ctx context.Context) *scoreAPI.Handler {
	if sp.scoreHand == nil {
		sp.scoreHand = scoreAPI.NewHandler(scoreAPI.HandlerDeps{
			Serv:   sp.ScoreService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.scoreHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = newRouter(sp.ScoreHandler(ctx), sp.Logger())
	}

	return sp.router
}

func newRouter(h *scoreAPI.Handler, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer, middleware.RequestLogger(logger))

	// browser front-ends are served from other origins
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Post("/save_score", h.SaveScore)
	r.Get("/get_scores", h.GetScores)
	r.Get("/get_leaderboard", h.GetLeaderboard)
	r.Get("/get_player_stats", h.GetPlayerStats)
	r.Get("/get_all_players", h.GetAllPlayers)
	r.Get("/health", h.Health)

	return r
}

// Close releases the connections opened by the provider
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
