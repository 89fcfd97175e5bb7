package plinko

import (
	"errors"
	"math"
	"testing"

	"mini_casino/internal/engine"
	"mini_casino/internal/model"
)

const eps = 1e-9

func TestBoardLayout(t *testing.T) {
	b := NewBoard(400, DefaultLayout())

	obstacles := b.Obstacles()
	if len(obstacles) != 40 {
		t.Fatalf("obstacles = %d, want 40", len(obstacles))
	}

	perRow := map[float64]int{}
	for _, o := range obstacles {
		perRow[o.Y]++
	}
	wantRows := []int{4, 6, 8, 10, 12}
	for i, want := range wantRows {
		y := 400.0 / 6 * float64(i+1)
		if perRow[y] != want {
			t.Errorf("row %d obstacles = %d, want %d", i+1, perRow[y], want)
		}
	}

	if first := obstacles[0]; math.Abs(first.X-80) > eps || math.Abs(first.Y-400.0/6) > eps {
		t.Errorf("first obstacle = %+v, want {80 %.4f}", first, 400.0/6)
	}
	if math.Abs(b.BallSize()-16) > eps {
		t.Errorf("ball size = %f, want 16", b.BallSize())
	}
	if math.Abs(b.Floor()-392) > eps {
		t.Errorf("floor = %f, want 392", b.Floor())
	}
}

func TestBoardResize(t *testing.T) {
	b := NewBoard(400, DefaultLayout())
	if b.Resize(400) {
		t.Error("Resize to the same size should not rebuild")
	}
	if !b.Resize(800) {
		t.Fatal("Resize to a new size should rebuild")
	}
	if got := b.Obstacles()[0].X; math.Abs(got-160) > eps {
		t.Errorf("first obstacle x after resize = %f, want 160", got)
	}
	if len(b.Obstacles()) != 40 {
		t.Errorf("obstacles after resize = %d, want 40", len(b.Obstacles()))
	}
}

func TestResolveZones(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name    string
		x       float64
		zone    int
		amount  int
		victory bool
	}{
		{"left edge", 50, 0, 4, true},
		{"left inner", 150, 1, 1, true},
		{"centre", 250, 2, 0, false},
		{"right inner", 350, 3, 1, true},
		{"right edge", 450, 4, 4, true},
		{"past left wall", -5, 0, 4, true},
		{"past right wall", 600, 4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Resolve(tt.x, 500)
			if got.Zone != tt.zone || got.Amount != tt.amount || got.Victory != tt.victory {
				t.Errorf("Resolve(%v) = %+v, want zone %d amount %d victory %v", tt.x, got, tt.zone, tt.amount, tt.victory)
			}
		})
	}
}

func TestNewBallRanges(t *testing.T) {
	b := NewBoard(300, DefaultLayout())
	rng := engine.NewSeededRNG(7)
	left, right := 0, 0

	for i := 0; i < 2000; i++ {
		ball := NewBall(rng, b)
		if ball.X < 100 || ball.X >= 200 {
			t.Fatalf("ball x = %f, want within [100, 200)", ball.X)
		}
		if ball.Y != 30 {
			t.Fatalf("ball y = %f, want 30", ball.Y)
		}
		speed := math.Abs(ball.DirX)
		if speed < 3 || speed >= 6 {
			t.Fatalf("ball |dirX| = %f, want within [3, 6)", speed)
		}
		if ball.DirY < 0 || ball.DirY >= 1 {
			t.Fatalf("ball dirY = %f, want within [0, 1)", ball.DirY)
		}
		if ball.DirX < 0 {
			left++
		} else {
			right++
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("launch directions not randomized: left=%d right=%d", left, right)
	}
}

func TestSimulatorTransitions(t *testing.T) {
	sim := NewSimulator(NewBoard(400, DefaultLayout()), DefaultRules(), engine.NewSeededRNG(1))

	if _, ok := sim.Step(); ok {
		t.Fatal("idle simulator should not land")
	}
	if err := sim.Replay(); !errors.Is(err, model.ErrNothingToReplay) {
		t.Fatalf("Replay() on idle = %v, want ErrNothingToReplay", err)
	}
	if err := sim.Launch(); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if sim.State() != StateFalling {
		t.Fatalf("state = %v, want falling", sim.State())
	}
	if err := sim.Launch(); !errors.Is(err, model.ErrRoundInProgress) {
		t.Fatalf("second Launch() = %v, want ErrRoundInProgress", err)
	}
	if err := sim.Replay(); !errors.Is(err, model.ErrRoundInProgress) {
		t.Fatalf("Replay() while falling = %v, want ErrRoundInProgress", err)
	}

	landing, ok := sim.Run(100000)
	if !ok {
		t.Fatal("ball never landed")
	}
	if sim.State() != StateLanded {
		t.Fatalf("state = %v, want landed", sim.State())
	}
	ball := sim.Ball()
	if ball.Y != sim.Board().Floor() || ball.DirX != 0 || !ball.Scored {
		t.Errorf("landed ball = %+v, want clamped to floor, no sideways speed, scored", ball)
	}
	want := DefaultRules().Resolve(ball.X, 400)
	if landing.Payout != want {
		t.Errorf("landing payout = %+v, want %+v", landing.Payout, want)
	}

	if err := sim.Replay(); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if sim.State() != StateFalling || sim.Ball().Scored {
		t.Errorf("after replay state = %v scored = %v, want falling and unscored", sim.State(), sim.Ball().Scored)
	}
}

func TestLandingScoredOnce(t *testing.T) {
	sim := NewSimulator(NewBoard(400, DefaultLayout()), DefaultRules(), engine.NewSeededRNG(3))
	if err := sim.Launch(); err != nil {
		t.Fatal(err)
	}
	if _, ok := sim.Run(100000); !ok {
		t.Fatal("ball never landed")
	}

	for i := 0; i < 50; i++ {
		// the floor check keeps firing while the ball rests there
		sim.ball.Y = sim.board.Floor() + 5
		if _, ok := sim.Step(); ok {
			t.Fatalf("tick %d scored a second time", i)
		}
		if sim.ball.Y != sim.board.Floor() {
			t.Fatalf("tick %d ball y = %f, want clamped to floor", i, sim.ball.Y)
		}
	}
}

func TestWallBounce(t *testing.T) {
	sim := NewSimulator(NewBoard(400, DefaultLayout()), DefaultRules(), engine.NewSeededRNG(1))
	if err := sim.Launch(); err != nil {
		t.Fatal(err)
	}
	sim.ball = Ball{X: 2, Y: 20, Size: 16, FallAccel: 0.1, AccelGrowth: 0.02, DirX: -3}

	sim.Step()
	if sim.ball.DirX != 3 {
		t.Errorf("dirX after left wall = %f, want 3", sim.ball.DirX)
	}

	sim.ball = Ball{X: 398, Y: 20, Size: 16, FallAccel: 0.1, AccelGrowth: 0.02, DirX: 4}
	sim.Step()
	if sim.ball.DirX != -4 {
		t.Errorf("dirX after right wall = %f, want -4", sim.ball.DirX)
	}

	// inside the margin but already heading back: no second flip
	for _, start := range []Ball{
		{X: 2, Y: 20, Size: 16, FallAccel: 0.1, AccelGrowth: 0.02, DirX: 3},
		{X: 398, Y: 20, Size: 16, FallAccel: 0.1, AccelGrowth: 0.02, DirX: -4},
	} {
		sim.ball = start
		sim.Step()
		if sim.ball.DirX != start.DirX {
			t.Errorf("ball at x=%v moving away: dirX = %f, want %f", start.X, sim.ball.DirX, start.DirX)
		}
	}
}

func TestObstacleCollision(t *testing.T) {
	sim := NewSimulator(NewBoard(400, DefaultLayout()), DefaultRules(), engine.NewSeededRNG(1))
	if err := sim.Launch(); err != nil {
		t.Fatal(err)
	}
	peg := sim.board.Obstacles()[0]
	startY := peg.Y - 5
	sim.ball = Ball{X: peg.X, Y: startY, Size: 16, FallAccel: 0.1, AccelGrowth: 0.02, DirY: 1}

	sim.Step()

	if sim.ball.DirX != 0 || sim.ball.DirY != -1 {
		t.Errorf("direction after hit = (%f, %f), want (0, -1)", sim.ball.DirX, sim.ball.DirY)
	}
	if math.Abs(sim.ball.AccelGrowth-0.025) > eps {
		t.Errorf("accel growth = %f, want 0.025", sim.ball.AccelGrowth)
	}
	if math.Abs(sim.ball.FallAccel-0.075) > eps {
		t.Errorf("fall accel = %f, want 0.075", sim.ball.FallAccel)
	}
	if math.Abs(sim.ball.Y-(startY-1+0.075)) > eps {
		t.Errorf("y = %f, want %f", sim.ball.Y, startY-1+0.075)
	}
}
