package service

import (
	"context"

	"mini_casino/internal/engine/plinko"
	"mini_casino/internal/model"
)

type ScoreService interface {
	SaveScore(ctx context.Context, req model.SaveScore) (*model.SaveScoreResult, error)
	Scores(ctx context.Context, query model.ScoresQuery) ([]model.ScoreEntry, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	PlayerStats(ctx context.Context, playerID string) (*model.PlayerStats, error)
	Players(ctx context.Context) ([]string, error)
	Health(ctx context.Context) (*model.Health, error)
}

// ProfileService is the player session of one game: ledger, victory log,
// local snapshot and remote saves.
type ProfileService interface {
	Load(ctx context.Context) error
	Record(ctx context.Context, score int, victory bool) (model.RoundResult, error)
	SaveScore(ctx context.Context, score int) (model.SaveAck, error)
	AddVictory(ctx context.Context, winAmount int) error
	VictoryStats() model.VictoryStats
	History() []model.RoundResult
	ClearHistory(ctx context.Context) error
	CurrentScore(ctx context.Context) int
	SetPlayerID(ctx context.Context, id string) error
	PlayerID() string
	GameType() model.GameType
	Close() error
}

type SlotService interface {
	Start(ctx context.Context) (*model.SlotSpin, error)
	Settle(ctx context.Context) (*model.SlotOutcome, error)
	Icons() []string
}

type PlinkoService interface {
	Launch() error
	Replay() error
	Tick(ctx context.Context) (*model.PlinkoLanding, error)
	Resize(size float64) bool
	Ball() plinko.Ball
	State() plinko.State
	Board() *plinko.Board
}
