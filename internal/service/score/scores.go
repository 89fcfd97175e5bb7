package score

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"mini_casino/internal/model"
)

// Scores returns the latest scores of a player, newest first
func (s *serv) Scores(ctx context.Context, query model.ScoresQuery) ([]model.ScoreEntry, error) {
	playerID := strings.TrimSpace(query.PlayerID)
	if playerID == "" {
		playerID = defaultPlayerID
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.Scores(ctx, playerID, limit)
}

// Leaderboard returns the best players by total score, from the cache when warm
func (s *serv) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("leaderboard cache read failed", zap.Error(err))
	}
	if ok {
		return cached, nil
	}

	entries, err := s.repo.Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, entries); err != nil {
		s.logger.Warn("leaderboard cache write failed", zap.Error(err))
	}
	return entries, nil
}

func (s *serv) PlayerStats(ctx context.Context, playerID string) (*model.PlayerStats, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		playerID = defaultPlayerID
	}
	stats, err := s.repo.PlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats.TotalGames > 0 {
		avg := float64(stats.TotalScore) / float64(stats.TotalGames)
		stats.AverageScore = math.Round(avg*100) / 100
	}
	return stats, nil
}

func (s *serv) Players(ctx context.Context) ([]string, error) {
	return s.repo.Players(ctx)
}

func (s *serv) Health(ctx context.Context) (*model.Health, error) {
	players, games, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Health{
		TotalPlayers: players,
		TotalGames:   games,
		Storage:      storageKind,
		House:        s.statsRepo.HouseStats(),
		Timestamp:    s.now().UTC(),
	}, nil
}
