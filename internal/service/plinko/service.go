package plinko

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"mini_casino/internal/engine/plinko"
	"mini_casino/internal/model"
	"mini_casino/internal/service"
)

type serv struct {
	mu      sync.Mutex
	sim     *plinko.Simulator
	profile service.ProfileService
	logger  *zap.Logger
}

// NewPlinkoService drives sim tick by tick and books every landing on profile
func NewPlinkoService(sim *plinko.Simulator, profile service.ProfileService, logger *zap.Logger) service.PlinkoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{sim: sim, profile: profile, logger: logger}
}

func (s *serv) Launch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Launch()
}

func (s *serv) Replay() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Replay()
}

// Tick advances the ball one step. It returns the landing on the single tick
// that scores it and nil on every other tick.
func (s *serv) Tick(ctx context.Context) (*model.PlinkoLanding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	landing, ok := s.sim.Step()
	if !ok {
		return nil, nil
	}

	payout := landing.Payout
	out := &model.PlinkoLanding{
		X:       landing.X,
		Zone:    payout.Zone,
		Payout:  payout.Amount,
		Victory: payout.Victory,
	}

	// every landing is a round, even a zero one
	round, err := s.profile.Record(ctx, payout.Amount, payout.Victory)
	out.Round = round
	errs := []error{err}
	if payout.Victory {
		errs = append(errs, s.profile.AddVictory(ctx, payout.Amount))
	}
	out.PersistErr = errors.Join(errs...)

	s.logger.Debug("ball landed",
		zap.Float64("x", landing.X),
		zap.Int("zone", payout.Zone),
		zap.Int("payout", payout.Amount),
		zap.Int("ticks", s.sim.Ticks()),
	)
	return out, nil
}

// Resize rebuilds the board for a new size. It is refused while a ball is
// falling, the next Launch or Replay uses the new layout.
func (s *serv) Resize(size float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sim.State() == plinko.StateFalling {
		return false
	}
	return s.sim.Board().Resize(size)
}

func (s *serv) Ball() plinko.Ball {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Ball()
}

func (s *serv) State() plinko.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.State()
}

func (s *serv) Board() *plinko.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Board()
}
