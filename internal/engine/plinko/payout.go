package plinko

// Rules holds the bucket payouts from the left wall to the right wall
type Rules struct {
	ZonePayouts []int
}

// DefaultRules pays 4, 1, 0, 1, 4 across five zones
func DefaultRules() Rules {
	return Rules{ZonePayouts: []int{4, 1, 0, 1, 4}}
}

type Payout struct {
	Zone    int
	Amount  int
	Victory bool
}

// Zone buckets x into equal-width zones across the board
func (r Rules) Zone(x, size float64) int {
	n := len(r.ZonePayouts)
	if n == 0 || size <= 0 {
		return 0
	}
	zone := int(x / (size / float64(n)))
	if zone < 0 {
		return 0
	}
	if zone >= n {
		return n - 1
	}
	return zone
}

func (r Rules) Resolve(x, size float64) Payout {
	if len(r.ZonePayouts) == 0 {
		return Payout{}
	}
	zone := r.Zone(x, size)
	amount := r.ZonePayouts[zone]
	return Payout{Zone: zone, Amount: amount, Victory: amount > 0}
}
