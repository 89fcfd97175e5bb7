package score_stats_repo

import (
	"sync"

	servModel "mini_casino/internal/model"
	"mini_casino/internal/repository"
	repoModel "mini_casino/internal/repository/score_stats_repo/model"
)

// DefaultWindowSize is how many recent scores the rolling rate covers
const DefaultWindowSize = 500

type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.HouseState
}

func NewScoreStatsRepository(windowSize int) repository.ScoreStatsRepository {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.HouseState{
			Window:     make([]repoModel.RoundDelta, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// Observe folds one saved score into the totals and the window
func (r *StatsRepo) Observe(score int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var delta repoModel.RoundDelta
	if score < 0 {
		delta.Stake = -score
	} else {
		delta.Payout = score
	}

	r.state.TotalRounds++
	r.state.TotalStakes += delta.Stake
	r.state.TotalPayouts += delta.Payout
	r.state.ReturnRate = rate(r.state.TotalPayouts, r.state.TotalStakes)

	r.state.Window = append(r.state.Window, delta)
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}

	var windowStakes, windowPayouts int
	for _, d := range r.state.Window {
		windowStakes += d.Stake
		windowPayouts += d.Payout
	}
	r.state.WindowRate = rate(windowPayouts, windowStakes)
}

func (r *StatsRepo) HouseStats() servModel.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return servModel.HouseStats{
		TotalRounds:  r.state.TotalRounds,
		TotalStakes:  r.state.TotalStakes,
		TotalPayouts: r.state.TotalPayouts,
		ReturnRate:   r.state.ReturnRate,
		WindowRounds: len(r.state.Window),
		WindowRate:   r.state.WindowRate,
	}
}

func rate(payouts, stakes int) float64 {
	if stakes == 0 {
		return 0
	}
	return float64(payouts) / float64(stakes) * 100
}
