// Package ledger keeps the recent round history and the victory log of a player.
package ledger

import "mini_casino/internal/model"

// DefaultCapacity is how many rounds the history keeps
const DefaultCapacity = 50

// Ledger is a fixed-capacity ring buffer of rounds. Once full, every new
// round overwrites the oldest one.
type Ledger struct {
	items []model.RoundResult
	head  int // index of the oldest round
	size  int
}

func New(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ledger{items: make([]model.RoundResult, capacity)}
}

// Record appends a round, evicting the oldest one beyond capacity
func (l *Ledger) Record(round model.RoundResult) {
	idx := (l.head + l.size) % len(l.items)
	l.items[idx] = round
	if l.size < len(l.items) {
		l.size++
		return
	}
	l.head = (l.head + 1) % len(l.items)
}

// History returns every round, newest first
func (l *Ledger) History() []model.RoundResult {
	out := make([]model.RoundResult, 0, l.size)
	for i := l.size - 1; i >= 0; i-- {
		out = append(out, l.items[(l.head+i)%len(l.items)])
	}
	return out
}

// Latest returns the most recent round
func (l *Ledger) Latest() (model.RoundResult, bool) {
	if l.size == 0 {
		return model.RoundResult{}, false
	}
	return l.items[(l.head+l.size-1)%len(l.items)], true
}

func (l *Ledger) Clear() {
	clear(l.items)
	l.head = 0
	l.size = 0
}

func (l *Ledger) Len() int {
	return l.size
}

func (l *Ledger) Cap() int {
	return len(l.items)
}

// Total sums the score of every kept round
func (l *Ledger) Total() int {
	total := 0
	for i := 0; i < l.size; i++ {
		total += l.items[(l.head+i)%len(l.items)].ScoreDelta
	}
	return total
}

// Restore replaces the content with rounds given newest first, as History returns them
func (l *Ledger) Restore(newestFirst []model.RoundResult) {
	l.Clear()
	for i := len(newestFirst) - 1; i >= 0; i-- {
		l.Record(newestFirst[i])
	}
}
