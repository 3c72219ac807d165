package game

// Difficulty is the declared tier of a target or mission.
type Difficulty int

const (
	Trivial Difficulty = iota
	Easy
	Medium
	Hard
	Extreme
	Impossible
)

func (d Difficulty) String() string {
	switch d {
	case Trivial:
		return "trivial"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	case Impossible:
		return "impossible"
	}
	return "unknown"
}

// Multiplier scales the base reward of an action by tier.
func (d Difficulty) Multiplier() int64 {
	switch d {
	case Trivial:
		return 1
	case Easy:
		return 2
	case Medium:
		return 4
	case Hard:
		return 8
	case Extreme:
		return 12
	case Impossible:
		return 20
	}
	return 1
}

// SuccessChance is the probability that a roll against this tier succeeds.
func (d Difficulty) SuccessChance() float64 {
	switch d {
	case Trivial:
		return 0.95
	case Easy:
		return 0.85
	case Medium:
		return 0.70
	case Hard:
		return 0.50
	case Extreme:
		return 0.30
	case Impossible:
		return 0.10
	}
	return 0.50
}
