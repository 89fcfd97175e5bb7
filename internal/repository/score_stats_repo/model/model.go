package model

// HouseState is the running view of every score the server has saved
type HouseState struct {
	TotalRounds  int // how many scores were saved
	TotalStakes  int // sum of the negative scores, as a positive number
	TotalPayouts int // sum of the positive scores

	ReturnRate float64 // TotalPayouts / TotalStakes * 100

	Window     []RoundDelta // latest scores, oldest first
	WindowRate float64      // return rate over the window
	WindowSize int
}

// RoundDelta is one saved score split into what the house took and paid
type RoundDelta struct {
	Stake  int
	Payout int
}
