package plinko

import (
	"math"

	"mini_casino/internal/engine"
	"mini_casino/internal/model"
)

type State int

const (
	StateIdle State = iota
	StateFalling
	StateLanded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFalling:
		return "falling"
	case StateLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// Landing is reported once per drop, on the tick the ball reaches the floor
type Landing struct {
	X      float64
	Payout Payout
}

// Simulator advances one ball over one board. Not safe for concurrent use.
type Simulator struct {
	board *Board
	rules Rules
	rng   engine.RandomSource
	ball  Ball
	state State
	ticks int
}

func NewSimulator(board *Board, rules Rules, rng engine.RandomSource) *Simulator {
	if rng == nil {
		rng = engine.DefaultRNG()
	}
	return &Simulator{
		board: board,
		rules: rules,
		rng:   rng,
		ball:  NewBall(rng, board),
	}
}

// Launch drops the ball that waits at the top
func (s *Simulator) Launch() error {
	if s.state != StateIdle {
		return model.ErrRoundInProgress
	}
	s.state = StateFalling
	s.ticks = 0
	return nil
}

// Replay puts a fresh ball at the top and drops it
func (s *Simulator) Replay() error {
	switch s.state {
	case StateFalling:
		return model.ErrRoundInProgress
	case StateIdle:
		return model.ErrNothingToReplay
	}
	s.ball = NewBall(s.rng, s.board)
	s.state = StateFalling
	s.ticks = 0
	return nil
}

// Step advances the ball by one animation tick. The landing is returned only
// on the tick that scores it; later ticks keep the ball resting on the floor.
func (s *Simulator) Step() (Landing, bool) {
	switch s.state {
	case StateFalling:
		s.ticks++
		s.bounceWalls()
		s.collide()
		s.integrate()
		return s.checkFloor()
	case StateLanded:
		return s.checkFloor()
	default:
		return Landing{}, false
	}
}

// Run steps until the ball lands or maxTicks is reached
func (s *Simulator) Run(maxTicks int) (Landing, bool) {
	for i := 0; i < maxTicks && s.state == StateFalling; i++ {
		if landing, ok := s.Step(); ok {
			return landing, true
		}
	}
	return Landing{}, false
}

func (s *Simulator) bounceWalls() {
	half := s.ball.Size / 2
	// only flip when heading into the wall, so a ball past the edge cannot get stuck flipping
	if (s.ball.X < half && s.ball.DirX < 0) || (s.ball.X > s.board.Size()-half && s.ball.DirX > 0) {
		s.ball.DirX = -s.ball.DirX
	}
}

// collide reflects the ball off the first peg in contact, one peg per tick
func (s *Simulator) collide() {
	contact := (s.ball.Size + s.board.ObstacleSize()) / 2
	for _, o := range s.board.obstacles {
		dx, dy := o.X-s.ball.X, o.Y-s.ball.Y
		dist := math.Hypot(dx, dy)
		if dist > contact {
			continue
		}
		if dist == 0 {
			// dead centre hit, push straight up
			s.ball.DirX, s.ball.DirY = 0, -1
		} else {
			s.ball.DirX, s.ball.DirY = -dx/dist, -dy/dist
		}
		s.ball.FallAccel *= hitDamping
		s.ball.AccelGrowth += hitGrowthStep
		return
	}
}

func (s *Simulator) integrate() {
	s.ball.FallAccel += s.ball.AccelGrowth
	s.ball.X += s.ball.DirX
	s.ball.Y += s.ball.DirY + s.ball.FallAccel
}

func (s *Simulator) checkFloor() (Landing, bool) {
	floor := s.board.Floor()
	if s.ball.Y <= floor {
		return Landing{}, false
	}
	s.ball.Y = floor
	s.ball.DirX = 0
	s.state = StateLanded
	if s.ball.Scored {
		return Landing{}, false
	}
	s.ball.Restitution *= s.ball.AccelGrowth
	s.ball.Scored = true
	return Landing{X: s.ball.X, Payout: s.rules.Resolve(s.ball.X, s.board.Size())}, true
}

func (s *Simulator) State() State {
	return s.state
}

// Ball returns a copy of the ball state
func (s *Simulator) Ball() Ball {
	return s.ball
}

func (s *Simulator) Board() *Board {
	return s.board
}

func (s *Simulator) Ticks() int {
	return s.ticks
}
