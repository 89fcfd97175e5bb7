package score

import (
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"mini_casino/internal/repository"
	"mini_casino/internal/service"
)

const (
	defaultPlayerID  = "guest"
	defaultLimit     = 10
	maxLimit         = 100
	leaderboardLimit = 10
	storageKind      = "postgres"
)

type serv struct {
	repo      repository.ScoreRepository
	statsRepo repository.ScoreStatsRepository
	cache     repository.LeaderboardCacheRepository
	txManager trm.Manager
	logger    *zap.Logger
	now       func() time.Time
}

func NewScoreService(
	repo repository.ScoreRepository,
	statsRepo repository.ScoreStatsRepository,
	cache repository.LeaderboardCacheRepository,
	txManager trm.Manager,
	logger *zap.Logger,
) service.ScoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		repo:      repo,
		statsRepo: statsRepo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}
