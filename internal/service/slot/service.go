package slot

import (
	"sync"

	"go.uber.org/zap"

	"mini_casino/internal/engine"
	"mini_casino/internal/engine/slot"
	"mini_casino/internal/service"
)

type serv struct {
	mu sync.Mutex

	reels   *slot.Reels
	rules   slot.Rules
	rng     engine.RandomSource
	profile service.ProfileService
	logger  *zap.Logger

	// set between Start and Settle
	busy    bool
	pending slot.Roll
}

// NewSlotService plays one slot round at a time on behalf of profile
func NewSlotService(
	reels *slot.Reels,
	rules slot.Rules,
	rng engine.RandomSource,
	profile service.ProfileService,
	logger *zap.Logger,
) service.SlotService {
	if rng == nil {
		rng = engine.DefaultRNG()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		reels:   reels,
		rules:   rules,
		rng:     rng,
		profile: profile,
		logger:  logger,
	}
}

func (s *serv) Icons() []string {
	return s.reels.Icons()
}
