package score

import "time"

type SaveScoreRequest struct {
	PlayerID string `json:"player_id"`           // "guest" when empty
	Score    *int   `json:"score"`               // required
	GameType string `json:"game_type,omitempty"` // "slot" when empty
}

type ScoreData struct {
	ID          int64     `json:"id"`
	Score       int       `json:"score"`
	GameType    string    `json:"game_type"`
	Timestamp   time.Time `json:"timestamp"`
	DateDisplay string    `json:"date_display"`
}

type SaveScoreResponse struct {
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	PlayerID   string    `json:"player_id"`
	ScoreData  ScoreData `json:"score_data"`
	TotalGames int       `json:"total_games"`
}

type ScoresResponse struct {
	PlayerID   string      `json:"player_id"`
	Scores     []ScoreData `json:"scores"` // newest first
	TotalCount int         `json:"total_count"`
}

type LeaderboardEntry struct {
	PlayerID    string    `json:"player_id"`
	TotalScore  int       `json:"total_score"`
	BestScore   int       `json:"best_score"`
	GamesPlayed int       `json:"games_played"`
	LastPlay    time.Time `json:"last_play"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	GeneratedAt time.Time          `json:"generated_at"`
}

type PlayerStatsResponse struct {
	PlayerID     string    `json:"player_id"`
	TotalGames   int       `json:"total_games"`
	TotalScore   int       `json:"total_score"`
	AverageScore float64   `json:"average_score"`
	BestScore    int       `json:"best_score"`
	WorstScore   int       `json:"worst_score"`
	LastGame     ScoreData `json:"last_game"`
	FirstGame    ScoreData `json:"first_game"`
}

type PlayersResponse struct {
	Players      []string `json:"players"`
	TotalPlayers int      `json:"total_players"`
}

type HouseStats struct {
	TotalRounds  int     `json:"total_rounds"`
	TotalStakes  int     `json:"total_stakes"`
	TotalPayouts int     `json:"total_payouts"`
	ReturnRate   float64 `json:"return_rate"`
	WindowRounds int     `json:"window_rounds"`
	WindowRate   float64 `json:"window_rate"`
}

type HealthResponse struct {
	Status       string     `json:"status"`
	TotalPlayers int        `json:"total_players"`
	TotalGames   int        `json:"total_games"`
	Storage      string     `json:"storage"`
	House        HouseStats `json:"house"`
	Timestamp    time.Time  `json:"timestamp"`
}
