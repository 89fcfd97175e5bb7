package profile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mini_casino/internal/client"
	"mini_casino/internal/ledger"
	"mini_casino/internal/model"
	"mini_casino/internal/repository"
	"mini_casino/internal/service"
)

type serv struct {
	mu sync.Mutex

	gameType  model.GameType
	playerID  string
	ledger    *ledger.Ledger
	victories *ledger.VictoryLog
	capacity  int

	store   repository.SnapshotRepository
	gateway client.ScoreClient
	outbox  *outbox
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

type Options struct {
	GameType       model.GameType
	LedgerCapacity int
	QueueSize      int
	// FlushTimeout bounds how long Close waits for pending remote saves
	FlushTimeout time.Duration
	Logger       *zap.Logger
}

// NewProfileService starts with the default player and an empty ledger; call Load
// to restore the last active profile. Close stops the remote outbox.
func NewProfileService(store repository.SnapshotRepository, gateway client.ScoreClient, opts Options) service.ProfileService {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("game", string(opts.GameType)))

	ob := newOutbox(gateway, logger, opts.QueueSize)
	if opts.FlushTimeout > 0 {
		ob.flushTimeout = opts.FlushTimeout
	}

	return &serv{
		gameType:  opts.GameType,
		playerID:  model.DefaultPlayerID,
		ledger:    ledger.New(opts.LedgerCapacity),
		victories: ledger.NewVictoryLog(),
		capacity:  opts.LedgerCapacity,
		store:     store,
		gateway:   gateway,
		outbox:    ob,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *serv) GameType() model.GameType {
	return s.gameType
}

func (s *serv) PlayerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerID
}

// Close flushes the pending remote saves, giving up after the flush timeout
func (s *serv) Close() error {
	s.outbox.close()
	return nil
}

// persist writes the current snapshot. Must be called with s.mu held.
func (s *serv) persist(ctx context.Context) error {
	snap := model.Snapshot{
		GameStack:   s.ledger.History(),
		VictoryList: s.victories.Stats().Victories,
		PlayerID:    s.playerID,
	}
	if err := s.store.SaveSnapshot(ctx, s.gameType, s.playerID, snap); err != nil {
		s.logger.Error("snapshot write failed", zap.String("player", s.playerID), zap.Error(err))
		return storageErr(err)
	}
	return nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}
