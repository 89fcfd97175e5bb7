package profile

import (
	"context"

	"mini_casino/internal/model"
)

func (s *serv) AddVictory(ctx context.Context, winAmount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.victories.RecordVictory(s.gameType, winAmount)
	return s.persist(ctx)
}

func (s *serv) VictoryStats() model.VictoryStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.victories.Stats()
}
