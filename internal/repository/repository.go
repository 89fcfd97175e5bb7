package repository

import (
	"context"

	"mini_casino/internal/model"
)

// ScoreRepository is the durable score store of the score server
type ScoreRepository interface {
	CreateScore(ctx context.Context, entry model.ScoreEntry) (model.ScoreEntry, error)
	UpsertPlayer(ctx context.Context, entry model.ScoreEntry) error
	CountPlayerGames(ctx context.Context, playerID string) (int, error)

	// Scores returns at most limit scores of the player, newest first
	Scores(ctx context.Context, playerID string, limit int) ([]model.ScoreEntry, error)
	PlayerStats(ctx context.Context, playerID string) (*model.PlayerStats, error)
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	Players(ctx context.Context) ([]string, error)
	Totals(ctx context.Context) (players int, games int, err error)
}

// ScoreStatsRepository keeps the rolling house statistics in memory
type ScoreStatsRepository interface {
	Observe(score int)
	HouseStats() model.HouseStats
}

// LeaderboardCacheRepository caches the computed leaderboard
type LeaderboardCacheRepository interface {
	Get(ctx context.Context) ([]model.LeaderboardEntry, bool, error)
	Set(ctx context.Context, entries []model.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

// SnapshotRepository is the local key-value store of player snapshots
type SnapshotRepository interface {
	Snapshot(ctx context.Context, gameType model.GameType, playerID string) (model.Snapshot, bool, error)
	SaveSnapshot(ctx context.Context, gameType model.GameType, playerID string, snap model.Snapshot) error
	LastPlayerID(ctx context.Context) (string, bool, error)
	SaveLastPlayerID(ctx context.Context, playerID string) error
	Close() error
}
