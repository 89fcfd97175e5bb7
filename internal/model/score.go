package model

import "time"

// ScoreEntry is a score row kept by the score server
type ScoreEntry struct {
	ID        int64
	PlayerID  string
	GameType  GameType
	Score     int
	Timestamp time.Time
}

type SaveScore struct {
	PlayerID string
	GameType GameType
	Score    *int
}

type SaveScoreResult struct {
	Entry      ScoreEntry
	TotalGames int
}

type ScoresQuery struct {
	PlayerID string
	Limit    int
}

// PlayerStats aggregates every score of one player
type PlayerStats struct {
	PlayerID     string
	TotalGames   int
	TotalScore   int
	AverageScore float64
	BestScore    int
	WorstScore   int
	FirstGame    ScoreEntry
	LastGame     ScoreEntry
}

type LeaderboardEntry struct {
	PlayerID    string    `json:"player_id"`
	TotalScore  int       `json:"total_score"`
	BestScore   int       `json:"best_score"`
	GamesPlayed int       `json:"games_played"`
	LastPlay    time.Time `json:"last_play"`
}

type Health struct {
	TotalPlayers int
	TotalGames   int
	Storage      string
	House        HouseStats
	Timestamp    time.Time
}

// HouseStats is the rolling view over the latest saved scores
type HouseStats struct {
	TotalRounds  int
	TotalStakes  int // sum of negative scores, as a positive number
	TotalPayouts int // sum of positive scores
	ReturnRate   float64
	WindowRounds int
	WindowRate   float64
}
