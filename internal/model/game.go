package model

import "time"

// SlotSpin is the first phase of a slot round: the bet is taken and the reels are rolled
type SlotSpin struct {
	Indexes   [3]int
	Symbols   [3]string
	StopAfter [3]time.Duration
	Bet       RoundResult
	// PersistErr is set when the local snapshot could not be written
	PersistErr error
}

// SlotOutcome is the settled slot round
type SlotOutcome struct {
	Indexes    [3]int
	Symbols    [3]string
	Payout     int
	Victory    bool
	Win        *RoundResult // nil when nothing was won
	PersistErr error
}

// PlinkoLanding is reported once per drop
type PlinkoLanding struct {
	X          float64
	Zone       int
	Payout     int
	Victory    bool
	Round      RoundResult
	PersistErr error
}
