package slot

import (
	"testing"
	"time"

	"mini_casino/internal/engine"
)

type fixedRNG struct {
	ints []int
	pos  int
}

func (f *fixedRNG) IntN(n int) int {
	v := f.ints[f.pos%len(f.ints)] % n
	f.pos++
	return v
}

func (f *fixedRNG) Float64() float64 { return 0 }

func TestResolve(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name    string
		reels   [NumReels]int
		amount  int
		victory bool
	}{
		{"three of a kind", [NumReels]int{3, 3, 3}, 100, true},
		{"left pair", [NumReels]int{3, 3, 5}, 50, false},
		{"right pair", [NumReels]int{1, 4, 4}, 50, false},
		{"outer pair does not pay", [NumReels]int{6, 2, 6}, 0, false},
		{"nothing", [NumReels]int{2, 5, 7}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Resolve(tt.reels)
			if got.Amount != tt.amount || got.Victory != tt.victory {
				t.Errorf("Resolve(%v) = %+v, want amount %d victory %v", tt.reels, got, tt.amount, tt.victory)
			}
		})
	}
}

func TestRollAdvancesIndexes(t *testing.T) {
	reels := NewReels(DefaultIcons, DefaultTiming())
	roll := reels.Roll(&fixedRNG{ints: []int{3}})

	wantDelta := [NumReels]int{21, 30, 39}
	wantStop := [NumReels]time.Duration{
		2900 * time.Millisecond,
		3950 * time.Millisecond,
		5000 * time.Millisecond,
	}
	for i, s := range roll.Stops {
		if s.Delta != wantDelta[i] {
			t.Errorf("reel %d delta = %d, want %d", i, s.Delta, wantDelta[i])
		}
		if s.Index != 3 {
			t.Errorf("reel %d index = %d, want 3", i, s.Index)
		}
		if s.StopAfter != wantStop[i] {
			t.Errorf("reel %d stop after = %v, want %v", i, s.StopAfter, wantStop[i])
		}
	}
	if roll.Duration() != wantStop[2] {
		t.Errorf("Duration() = %v, want %v", roll.Duration(), wantStop[2])
	}

	// second roll continues from the previous position
	roll = reels.Roll(&fixedRNG{ints: []int{4, 0, 8}})
	want := [NumReels]int{7, 3, 2}
	if roll.Indexes != want {
		t.Errorf("indexes after second roll = %v, want %v", roll.Indexes, want)
	}
	if reels.Indexes() != want {
		t.Errorf("Indexes() = %v, want %v", reels.Indexes(), want)
	}
}

func TestRollIsUniform(t *testing.T) {
	const n = 90000
	reels := NewReels(DefaultIcons, DefaultTiming())
	rng := engine.NewSeededRNG(42)

	counts := make([]int, reels.NumIcons())
	for i := 0; i < n; i++ {
		roll := reels.Roll(rng)
		counts[roll.Stops[0].Delta%reels.NumIcons()]++
	}
	want := 1.0 / float64(reels.NumIcons())
	for icon, c := range counts {
		freq := float64(c) / n
		if diff := freq - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("icon %d freq = %f, want about %f", icon, freq, want)
		}
	}
}

func TestSymbols(t *testing.T) {
	reels := NewReels(nil, DefaultTiming())
	got := reels.Symbols([NumReels]int{0, 1, 8})
	want := [NumReels]string{"Banana", "Seven", "Watermelon"}
	if got != want {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}
}
