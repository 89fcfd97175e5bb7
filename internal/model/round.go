package model

import (
	"time"
)

// GameType identifies which mini-game produced a round
type GameType string

const (
	GameSlot   GameType = "slot"
	GamePlinko GameType = "plinko"
)

// DefaultPlayerID is used when the player leaves the id blank
const DefaultPlayerID = "invite"

// RoundResult is one recorded score change. Immutable once created.
type RoundResult struct {
	ID         string    `json:"id"`
	GameType   GameType  `json:"gameType"`
	ScoreDelta int       `json:"score"`
	Timestamp  time.Time `json:"timestamp"`
	IsVictory  bool      `json:"isVictory"`
}

// VictoryRecord is one entry of the victory log
type VictoryRecord struct {
	GameType  GameType  `json:"gameType"`
	Timestamp time.Time `json:"timestamp"`
	WinAmount int       `json:"winAmount"`
}

// VictoryStats is the read model of the victory log
type VictoryStats struct {
	TotalWins int
	Victories []VictoryRecord
}

// Snapshot is what the local store keeps per player and game
type Snapshot struct {
	GameStack   []RoundResult   `json:"gameStack"` // newest first
	VictoryList []VictoryRecord `json:"victoryList"`
	PlayerID    string          `json:"playerId"`
}

// SaveAck is the acknowledgement of a score save
type SaveAck struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	// Local is set when the remote store was not reached
	Local bool `json:"-"`
}

// LocalSaveAck is returned when the remote save failed and only the local snapshot holds the round
func LocalSaveAck() SaveAck {
	return SaveAck{Status: "success", Message: "local save", Local: true}
}
