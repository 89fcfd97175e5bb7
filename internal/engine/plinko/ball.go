package plinko

import "mini_casino/internal/engine"

const (
	initialFallAccel   = 0.1
	initialRestitution = 0.001
	initialAccelGrowth = 0.02

	launchSpeed = 3.0
	// on every peg hit the fall term halves and the growth rate goes up
	hitDamping    = 0.5
	hitGrowthStep = 0.005
)

// Ball is the mutable state of the dropped ball
type Ball struct {
	X, Y        float64
	Size        float64
	FallAccel   float64 // accumulated vertical acceleration
	Restitution float64
	AccelGrowth float64
	DirX, DirY  float64
	Scored      bool
}

// NewBall places a ball in the middle third of the board, a tenth below the
// top, moving sideways at 3..6 units per tick in a random direction.
func NewBall(rng engine.RandomSource, b *Board) Ball {
	size := b.Size()
	return Ball{
		X:           rng.Float64()*size/3 + size/3,
		Y:           size / 10,
		Size:        b.BallSize(),
		FallAccel:   initialFallAccel,
		Restitution: initialRestitution,
		AccelGrowth: initialAccelGrowth,
		DirX:        engine.RandomSign(rng, (rng.Float64()+1)*launchSpeed),
		DirY:        rng.Float64(),
	}
}
