// Package slot implements the three-reel slot machine outcome generator and payout rules.
package slot

import (
	"time"

	"mini_casino/internal/engine"
)

const (
	// Reels on the machine
	NumReels = 3
	// Full turns every reel makes before the random part, reel i adds i more
	minTurns = 2
	// Base ticks of the stop animation before the per-icon part
	baseStopTicks = 8
)

// DefaultIcons is the icon strip in reel order
var DefaultIcons = []string{"Banana", "Seven", "Cherry", "Plum", "Orange", "Bell", "Bar", "Lemon", "Watermelon"}

// Timing drives the stop delays the front-end animates
type Timing struct {
	PerIcon time.Duration
	Stagger time.Duration
}

// DefaultTiming is 100ms per icon travelled and 150ms between reels
func DefaultTiming() Timing {
	return Timing{PerIcon: 100 * time.Millisecond, Stagger: 150 * time.Millisecond}
}

// ReelStop describes how one reel moved during a roll
type ReelStop struct {
	Reel      int
	Delta     int // icons travelled, including the forced turns
	Index     int // icon index after the roll
	StopAfter time.Duration
}

// Roll is the outcome of spinning all reels once
type Roll struct {
	Stops   [NumReels]ReelStop
	Indexes [NumReels]int
}

// Duration is how long until the last reel stops
func (r Roll) Duration() time.Duration {
	var d time.Duration
	for _, s := range r.Stops {
		if s.StopAfter > d {
			d = s.StopAfter
		}
	}
	return d
}

// Reels keeps the current icon index of every reel
type Reels struct {
	icons   []string
	timing  Timing
	indexes [NumReels]int
}

// NewReels starts every reel on the first icon of the strip
func NewReels(icons []string, timing Timing) *Reels {
	if len(icons) == 0 {
		icons = DefaultIcons
	}
	return &Reels{icons: icons, timing: timing}
}

// Roll spins every reel. Each reel travels (i+2) full turns plus a uniform
// random number of icons, so reels to the right stop later.
func (r *Reels) Roll(rng engine.RandomSource) Roll {
	n := len(r.icons)
	var res Roll
	for i := 0; i < NumReels; i++ {
		delta := (i+minTurns)*n + rng.IntN(n)
		r.indexes[i] = (r.indexes[i] + delta%n) % n
		res.Stops[i] = ReelStop{
			Reel:      i,
			Delta:     delta,
			Index:     r.indexes[i],
			StopAfter: time.Duration(baseStopTicks+delta)*r.timing.PerIcon + time.Duration(i)*r.timing.Stagger,
		}
	}
	res.Indexes = r.indexes
	return res
}

func (r *Reels) Indexes() [NumReels]int {
	return r.indexes
}

func (r *Reels) NumIcons() int {
	return len(r.icons)
}

// Icons returns a copy of the icon strip
func (r *Reels) Icons() []string {
	return append([]string(nil), r.icons...)
}

// Symbols maps icon indexes to their names
func (r *Reels) Symbols(indexes [NumReels]int) [NumReels]string {
	var out [NumReels]string
	for i, idx := range indexes {
		out[i] = r.icons[idx%len(r.icons)]
	}
	return out
}
