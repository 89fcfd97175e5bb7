package profile

import (
	"context"

	"go.uber.org/zap"

	"mini_casino/internal/model"
)

// History returns the kept rounds, newest first
func (s *serv) History() []model.RoundResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.History()
}

func (s *serv) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Clear()
	return s.persist(ctx)
}

// CurrentScore is the latest score the server holds for the player, or the sum
// of the local ledger when the server cannot be reached.
func (s *serv) CurrentScore(ctx context.Context) int {
	playerID := s.PlayerID()

	if s.gateway != nil {
		scores, err := s.gateway.LatestScores(ctx, playerID, 1)
		if err == nil {
			if len(scores) == 0 {
				return 0
			}
			return scores[0].Score
		}
		s.logger.Warn("current score unavailable remotely, using local ledger", zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Total()
}
