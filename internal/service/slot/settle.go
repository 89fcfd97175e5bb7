package slot

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mini_casino/internal/model"
)

// Settle resolves the rolled reels. A win is recorded as a separate round and
// only three of a kind enters the victory log.
func (s *serv) Settle(ctx context.Context) (*model.SlotOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.busy {
		return nil, model.ErrRoundNotStarted
	}
	defer func() { s.busy = false }()

	indexes := s.pending.Indexes
	payout := s.rules.Resolve(indexes)
	outcome := &model.SlotOutcome{
		Indexes: indexes,
		Symbols: s.reels.Symbols(indexes),
		Payout:  payout.Amount,
		Victory: payout.Victory,
	}

	var errs []error
	if payout.Amount > 0 {
		win, err := s.profile.Record(ctx, payout.Amount, payout.Victory)
		outcome.Win = &win
		errs = append(errs, err)
	}
	if payout.Victory {
		errs = append(errs, s.profile.AddVictory(ctx, payout.Amount))
	}
	outcome.PersistErr = errors.Join(errs...)

	s.logger.Debug("slot settled", zap.Int("payout", payout.Amount), zap.Bool("victory", payout.Victory))
	return outcome, nil
}
