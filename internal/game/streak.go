package game

// StreakMultiplier scales rewards by consecutive-success count. The bands
// and factors form a capped increasing curve.
func StreakMultiplier(streak int) float64 {
	switch {
	case streak < 5:
		return 1.0
	case streak < 10:
		return 1.1
	case streak < 20:
		return 1.25
	case streak < 30:
		return 1.5
	case streak < 50:
		return 1.75
	default:
		return 2.0
	}
}

// StreakLabel is the flavor text shown next to the streak counter.
func StreakLabel(streak int) string {
	switch {
	case streak < 5:
		return "No Streak"
	case streak < 10:
		return "Hot Streak! (+10% bonus)"
	case streak < 20:
		return "On Fire! (+25% bonus)"
	case streak < 30:
		return "Unstoppable! (+50% bonus)"
	case streak < 50:
		return "Legendary! (+75% bonus)"
	default:
		return "GODLIKE! (+100% bonus)"
	}
}
