package client

import (
	"context"

	"mini_casino/internal/model"
)

// ScoreClient is the remote score server as seen by the games
type ScoreClient interface {
	SaveScore(ctx context.Context, playerID string, gameType model.GameType, score int) (model.SaveAck, error)
	// LatestScores returns at most limit scores, newest first
	LatestScores(ctx context.Context, playerID string, limit int) ([]model.ScoreEntry, error)
}
