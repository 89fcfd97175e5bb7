package ledger

import (
	"time"

	"mini_casino/internal/model"
)

// VictoryLog is the unbounded, insertion-ordered list of victories
type VictoryLog struct {
	victories []model.VictoryRecord
	count     int
	now       func() time.Time
}

func NewVictoryLog() *VictoryLog {
	return &VictoryLog{now: time.Now}
}

// RecordVictory appends a victory stamped with the current time
func (v *VictoryLog) RecordVictory(gameType model.GameType, winAmount int) model.VictoryRecord {
	rec := model.VictoryRecord{GameType: gameType, Timestamp: v.now().UTC(), WinAmount: winAmount}
	v.append(rec)
	return rec
}

func (v *VictoryLog) append(rec model.VictoryRecord) {
	v.victories = append(v.victories, rec)
	v.count++
}

// Stats returns the count and a copy of every victory in insertion order
func (v *VictoryLog) Stats() model.VictoryStats {
	out := make([]model.VictoryRecord, len(v.victories))
	copy(out, v.victories)
	return model.VictoryStats{TotalWins: v.count, Victories: out}
}

func (v *VictoryLog) Count() int {
	return v.count
}

// Restore replaces the log keeping the stored timestamps
func (v *VictoryLog) Restore(records []model.VictoryRecord) {
	v.victories = nil
	v.count = 0
	for _, rec := range records {
		v.append(rec)
	}
}
