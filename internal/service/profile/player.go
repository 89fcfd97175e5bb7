package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"mini_casino/internal/ledger"
	"mini_casino/internal/model"
)

// Load restores the last active player, or the default one on first start
func (s *serv) Load(ctx context.Context) error {
	id, ok, err := s.store.LastPlayerID(ctx)
	if err != nil {
		return storageErr(err)
	}
	if !ok {
		id = model.DefaultPlayerID
	}
	return s.SetPlayerID(ctx, id)
}

// SetPlayerID switches to another player's snapshot. A blank id selects the
// default player. On a storage failure the previous profile stays active.
func (s *serv) SetPlayerID(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		id = model.DefaultPlayerID
	}

	// the store is local, so the lock is held across the read and the swap and
	// no round recorded in between can be lost
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, _, err := s.store.Snapshot(ctx, s.gameType, id)
	if err != nil {
		s.logger.Error("snapshot read failed", zap.String("player", id), zap.Error(err))
		return storageErr(err)
	}
	if err := s.store.SaveLastPlayerID(ctx, id); err != nil {
		s.logger.Error("last player write failed", zap.String("player", id), zap.Error(err))
		return storageErr(err)
	}

	l := ledger.New(s.capacity)
	l.Restore(snap.GameStack)
	v := ledger.NewVictoryLog()
	v.Restore(snap.VictoryList)

	s.playerID = id
	s.ledger = l
	s.victories = v
	s.logger.Info("player loaded", zap.String("player", id), zap.Int("rounds", l.Len()), zap.Int("victories", v.Count()))
	return nil
}
