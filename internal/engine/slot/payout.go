package slot

// Rules is the slot pay table
type Rules struct {
	Bet          int
	ThreeOfAKind int
	TwoAdjacent  int
}

// DefaultRules: bet 10, three of a kind 100, adjacent pair 50
func DefaultRules() Rules {
	return Rules{Bet: 10, ThreeOfAKind: 100, TwoAdjacent: 50}
}

// Payout is the resolved win of one spin
type Payout struct {
	Amount  int
	Victory bool
}

// Resolve evaluates settled reels. Only three of a kind counts as a victory,
// a pair must sit on neighbouring reels.
func (r Rules) Resolve(indexes [NumReels]int) Payout {
	switch {
	case indexes[0] == indexes[1] && indexes[1] == indexes[2]:
		return Payout{Amount: r.ThreeOfAKind, Victory: true}
	case indexes[0] == indexes[1] || indexes[1] == indexes[2]:
		return Payout{Amount: r.TwoAdjacent}
	default:
		return Payout{}
	}
}
