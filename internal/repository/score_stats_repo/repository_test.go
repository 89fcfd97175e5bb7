package score_stats_repo

import (
	"math"
	"sync"
	"testing"
)

func TestObserve(t *testing.T) {
	r := NewScoreStatsRepository(4)

	for _, s := range []int{-10, 100, -10, -10, 50, -10} {
		r.Observe(s)
	}

	stats := r.HouseStats()
	if stats.TotalRounds != 6 || stats.TotalStakes != 40 || stats.TotalPayouts != 150 {
		t.Fatalf("totals = %+v", stats)
	}
	if math.Abs(stats.ReturnRate-375) > 1e-9 {
		t.Errorf("return rate = %f, want 375", stats.ReturnRate)
	}
	// window keeps -10, -10, 50, -10
	if stats.WindowRounds != 4 {
		t.Errorf("window rounds = %d, want 4", stats.WindowRounds)
	}
	if math.Abs(stats.WindowRate-50.0/30*100) > 1e-9 {
		t.Errorf("window rate = %f, want %f", stats.WindowRate, 50.0/30*100)
	}
}

func TestObserveWithoutStakes(t *testing.T) {
	r := NewScoreStatsRepository(0)
	r.Observe(0)
	r.Observe(4)
	if stats := r.HouseStats(); stats.ReturnRate != 0 || stats.WindowRate != 0 {
		t.Errorf("rates without stakes = %+v, want 0", stats)
	}
}

func TestObserveConcurrent(t *testing.T) {
	r := NewScoreStatsRepository(DefaultWindowSize)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Observe(-10)
				_ = r.HouseStats()
			}
		}()
	}
	wg.Wait()

	if stats := r.HouseStats(); stats.TotalRounds != 800 || stats.WindowRounds != DefaultWindowSize {
		t.Errorf("stats = %+v", stats)
	}
}
