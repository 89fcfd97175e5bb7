package ledger

import (
	"testing"
	"time"

	"mini_casino/internal/model"
)

func round(score int) model.RoundResult {
	return model.RoundResult{GameType: model.GameSlot, ScoreDelta: score}
}

func TestLedgerKeepsMostRecent(t *testing.T) {
	tests := []struct {
		name    string
		records int
		wantLen int
	}{
		{"empty", 0, 0},
		{"under capacity", 10, 10},
		{"at capacity", 50, 50},
		{"one over", 51, 50},
		{"many over", 137, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(DefaultCapacity)
			for i := 1; i <= tt.records; i++ {
				l.Record(round(i))
			}
			history := l.History()
			if len(history) != tt.wantLen || l.Len() != tt.wantLen {
				t.Fatalf("len = %d (Len %d), want %d", len(history), l.Len(), tt.wantLen)
			}
			// newest first, and exactly the last wantLen rounds
			for i, r := range history {
				if want := tt.records - i; r.ScoreDelta != want {
					t.Fatalf("history[%d] = %d, want %d", i, r.ScoreDelta, want)
				}
			}
		})
	}
}

func TestLedgerClear(t *testing.T) {
	l := New(3)
	for i := 0; i < 5; i++ {
		l.Record(round(i))
	}
	l.Clear()
	if l.Len() != 0 || len(l.History()) != 0 {
		t.Fatalf("after Clear len = %d, want 0", l.Len())
	}
	if _, ok := l.Latest(); ok {
		t.Error("Latest() on empty ledger should report false")
	}

	l.Record(round(9))
	if got, _ := l.Latest(); got.ScoreDelta != 9 {
		t.Errorf("Latest() = %d, want 9", got.ScoreDelta)
	}
}

func TestLedgerTotal(t *testing.T) {
	l := New(3)
	for _, s := range []int{-10, 50, -10, 100} {
		l.Record(round(s))
	}
	// -10 was evicted
	if got := l.Total(); got != 140 {
		t.Errorf("Total() = %d, want 140", got)
	}
}

func TestLedgerRestoreRoundTrip(t *testing.T) {
	l := New(DefaultCapacity)
	for i := 0; i < 60; i++ {
		l.Record(round(i))
	}
	saved := l.History()

	other := New(DefaultCapacity)
	other.Record(round(-1))
	other.Restore(saved)

	got := other.History()
	if len(got) != len(saved) {
		t.Fatalf("restored len = %d, want %d", len(got), len(saved))
	}
	for i := range saved {
		if got[i] != saved[i] {
			t.Fatalf("restored[%d] = %+v, want %+v", i, got[i], saved[i])
		}
	}
}

func TestVictoryLogCount(t *testing.T) {
	v := NewVictoryLog()
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return fixed }

	for i := 1; i <= 120; i++ {
		v.RecordVictory(model.GamePlinko, i)
		stats := v.Stats()
		if stats.TotalWins != len(stats.Victories) || stats.TotalWins != i {
			t.Fatalf("after %d victories: total %d, list %d", i, stats.TotalWins, len(stats.Victories))
		}
	}

	stats := v.Stats()
	for i, rec := range stats.Victories {
		if rec.WinAmount != i+1 {
			t.Fatalf("victory[%d] = %d, want insertion order", i, rec.WinAmount)
		}
		if !rec.Timestamp.Equal(fixed) {
			t.Fatalf("victory[%d] timestamp = %v, want %v", i, rec.Timestamp, fixed)
		}
	}

	v.Restore(stats.Victories[:3])
	if v.Count() != 3 || len(v.Stats().Victories) != 3 {
		t.Errorf("after Restore count = %d, want 3", v.Count())
	}
}
