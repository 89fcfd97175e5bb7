// Package plinko implements the plinko board, the ball physics step and the bucket payouts.
package plinko

const (
	DefaultBoardSize = 400.0
	defaultRows      = 5
	defaultObstacles = 40
)

// Layout describes how many pegs the board carries
type Layout struct {
	Rows      int
	Obstacles int
}

func DefaultLayout() Layout {
	return Layout{Rows: defaultRows, Obstacles: defaultObstacles}
}

type Obstacle struct {
	X, Y float64
}

// Board is a square board with pegs in staggered rows. The first row holds
// half of the average row width and every next row two more, which makes
// the diamond shape.
type Board struct {
	size         float64
	layout       Layout
	obstacles    []Obstacle
	ballSize     float64
	obstacleSize float64
}

// NewBoard lays out the pegs for a board of the given size
func NewBoard(size float64, layout Layout) *Board {
	if layout.Rows <= 0 || layout.Obstacles <= 0 {
		layout = DefaultLayout()
	}
	b := &Board{layout: layout}
	b.build(size)
	return b
}

// Resize rebuilds the pegs when the size actually changed
func (b *Board) Resize(size float64) bool {
	if size == b.size {
		return false
	}
	b.build(size)
	return true
}

func (b *Board) build(size float64) {
	if size <= 0 {
		size = DefaultBoardSize
	}
	b.size = size
	b.ballSize = size / 25
	b.obstacleSize = size * 2 / 65

	perRow := b.layout.Obstacles / b.layout.Rows
	inRow := (perRow + 1) / 2
	if inRow < 1 {
		inRow = 1
	}

	b.obstacles = b.obstacles[:0]
	for row := 1; row <= b.layout.Rows; row++ {
		for i := 1; i <= inRow; i++ {
			b.obstacles = append(b.obstacles, Obstacle{
				X: size / float64(inRow+1) * float64(i),
				Y: size / float64(b.layout.Rows+1) * float64(row),
			})
		}
		inRow += 2
	}
}

func (b *Board) Size() float64 {
	return b.size
}

func (b *Board) BallSize() float64 {
	return b.ballSize
}

func (b *Board) ObstacleSize() float64 {
	return b.obstacleSize
}

// Obstacles returns a copy of the peg positions
func (b *Board) Obstacles() []Obstacle {
	out := make([]Obstacle, len(b.obstacles))
	copy(out, b.obstacles)
	return out
}

// Floor is the lowest y the ball centre can reach
func (b *Board) Floor() float64 {
	return b.size - b.ballSize/2
}
