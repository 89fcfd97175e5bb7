package profile

import (
	"context"

	"go.uber.org/zap"

	"mini_casino/internal/model"
)

// Record appends a round to the ledger, writes the snapshot and queues the
// remote save. The round stays recorded even when the snapshot write fails.
func (s *serv) Record(ctx context.Context, score int, victory bool) (model.RoundResult, error) {
	round, _, err := s.record(ctx, score, victory, nil)
	return round, err
}

// SaveScore records the round and waits for the server's acknowledgement. An
// unreachable server yields the local save acknowledgement.
func (s *serv) SaveScore(ctx context.Context, score int) (model.SaveAck, error) {
	done := make(chan model.SaveAck, 1)
	_, queued, err := s.record(ctx, score, false, done)
	if !queued {
		return model.LocalSaveAck(), err
	}

	select {
	case ack := <-done:
		return ack, err
	case <-ctx.Done():
		return model.LocalSaveAck(), ctx.Err()
	}
}

func (s *serv) record(ctx context.Context, score int, victory bool, done chan model.SaveAck) (model.RoundResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round := model.RoundResult{
		ID:         s.newID(),
		GameType:   s.gameType,
		ScoreDelta: score,
		Timestamp:  s.now().UTC(),
		IsVictory:  victory,
	}
	s.ledger.Record(round)
	s.logger.Debug("round recorded", zap.String("player", s.playerID), zap.Int("score", score))

	err := s.persist(ctx)

	// queued under the lock so remote order matches ledger order
	queued := s.outbox.enqueue(pushJob{playerID: s.playerID, gameType: s.gameType, score: score, done: done})
	if !queued {
		s.logger.Warn("outbox closed, round kept locally", zap.Int("score", score))
	}
	return round, queued, err
}
