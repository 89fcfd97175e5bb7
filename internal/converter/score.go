package converter

import (
	"time"

	dto "mini_casino/internal/api/dto/score"
	"mini_casino/internal/model"
)

const dateDisplayLayout = "02/01/2006 15:04"

func ToSaveScore(req dto.SaveScoreRequest) model.SaveScore {
	return model.SaveScore{
		PlayerID: req.PlayerID,
		GameType: model.GameType(req.GameType),
		Score:    req.Score,
	}
}

func ToSaveScoreResponse(res model.SaveScoreResult) dto.SaveScoreResponse {
	return dto.SaveScoreResponse{
		Status:     "success",
		Message:    "score saved",
		PlayerID:   res.Entry.PlayerID,
		ScoreData:  toScoreData(res.Entry),
		TotalGames: res.TotalGames,
	}
}

func ToScoresResponse(playerID string, entries []model.ScoreEntry) dto.ScoresResponse {
	scores := make([]dto.ScoreData, len(entries))
	for i, e := range entries {
		scores[i] = toScoreData(e)
	}
	return dto.ScoresResponse{
		PlayerID:   playerID,
		Scores:     scores,
		TotalCount: len(scores),
	}
}

func ToLeaderboardResponse(entries []model.LeaderboardEntry, generatedAt time.Time) dto.LeaderboardResponse {
	out := make([]dto.LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = dto.LeaderboardEntry{
			PlayerID:    e.PlayerID,
			TotalScore:  e.TotalScore,
			BestScore:   e.BestScore,
			GamesPlayed: e.GamesPlayed,
			LastPlay:    e.LastPlay,
		}
	}
	return dto.LeaderboardResponse{Leaderboard: out, GeneratedAt: generatedAt}
}

func ToPlayerStatsResponse(stats model.PlayerStats) dto.PlayerStatsResponse {
	return dto.PlayerStatsResponse{
		PlayerID:     stats.PlayerID,
		TotalGames:   stats.TotalGames,
		TotalScore:   stats.TotalScore,
		AverageScore: stats.AverageScore,
		BestScore:    stats.BestScore,
		WorstScore:   stats.WorstScore,
		LastGame:     toScoreData(stats.LastGame),
		FirstGame:    toScoreData(stats.FirstGame),
	}
}

func ToPlayersResponse(players []string) dto.PlayersResponse {
	return dto.PlayersResponse{Players: players, TotalPlayers: len(players)}
}

func ToHealthResponse(h model.Health) dto.HealthResponse {
	return dto.HealthResponse{
		Status:       "healthy",
		TotalPlayers: h.TotalPlayers,
		TotalGames:   h.TotalGames,
		Storage:      h.Storage,
		House: dto.HouseStats{
			TotalRounds:  h.House.TotalRounds,
			TotalStakes:  h.House.TotalStakes,
			TotalPayouts: h.House.TotalPayouts,
			ReturnRate:   h.House.ReturnRate,
			WindowRounds: h.House.WindowRounds,
			WindowRate:   h.House.WindowRate,
		},
		Timestamp: h.Timestamp,
	}
}

func toScoreData(e model.ScoreEntry) dto.ScoreData {
	return dto.ScoreData{
		ID:          e.ID,
		Score:       e.Score,
		GameType:    string(e.GameType),
		Timestamp:   e.Timestamp,
		DateDisplay: e.Timestamp.Format(dateDisplayLayout),
	}
}
