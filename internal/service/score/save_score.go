package score

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"mini_casino/internal/model"
)

// SaveScore stores the score and folds it into the player's aggregate in one transaction
func (s *serv) SaveScore(ctx context.Context, req model.SaveScore) (*model.SaveScoreResult, error) {
	if req.Score == nil {
		return nil, model.ErrScoreRequired
	}

	entry := model.ScoreEntry{
		PlayerID: strings.TrimSpace(req.PlayerID),
		GameType: req.GameType,
		Score:    *req.Score,
	}
	if entry.PlayerID == "" {
		entry.PlayerID = defaultPlayerID
	}
	if entry.GameType == "" {
		entry.GameType = model.GameSlot
	}

	var result model.SaveScoreResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err := s.repo.CreateScore(ctx, entry)
		if err != nil {
			return err
		}
		if err := s.repo.UpsertPlayer(ctx, saved); err != nil {
			return err
		}
		total, err := s.repo.CountPlayerGames(ctx, saved.PlayerID)
		if err != nil {
			return err
		}
		result = model.SaveScoreResult{Entry: saved, TotalGames: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Observe(entry.Score)
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}

	s.logger.Debug("score saved",
		zap.String("player", entry.PlayerID),
		zap.String("game", string(entry.GameType)),
		zap.Int("score", entry.Score),
	)
	return &result, nil
}
