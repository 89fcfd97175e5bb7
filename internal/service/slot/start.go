package slot

import (
	"context"

	"go.uber.org/zap"

	"mini_casino/internal/model"
)

// Start takes the bet and rolls the reels. The round stays open until Settle,
// once the front-end has animated the stops.
func (s *serv) Start(ctx context.Context) (*model.SlotSpin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return nil, model.ErrRoundInProgress
	}
	s.busy = true

	// the bet is its own round and is recorded before the outcome exists
	bet, persistErr := s.profile.Record(ctx, -s.rules.Bet, false)

	roll := s.reels.Roll(s.rng)
	s.pending = roll

	spin := &model.SlotSpin{
		Indexes:    roll.Indexes,
		Symbols:    s.reels.Symbols(roll.Indexes),
		Bet:        bet,
		PersistErr: persistErr,
	}
	for i, stop := range roll.Stops {
		spin.StopAfter[i] = stop.StopAfter
	}

	s.logger.Debug("reels rolled", zap.Ints("indexes", roll.Indexes[:]))
	return spin, nil
}
