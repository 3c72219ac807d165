package game

// failureHeat is the minimum heat a failed operation draws, whatever its
// kind. Noisy failures attract attention even when the action itself is
// quiet.
const failureHeat = 15.0

// heatCost is the fixed heat price of performing an action of this kind.
func heatCost(kind CommandKind) float64 {
	switch kind {
	case KindScan:
		return 10
	case KindExploit:
		return 25
	case KindInject:
		return 20
	case KindDecrypt, KindOther:
		return 5
	}
	return 0
}

// baseReward is the reputation granted for a successful action of this
// kind before tier and streak scaling. Credits pay out at ten times the
// final reputation reward.
func baseReward(kind CommandKind) int64 {
	switch kind {
	case KindScan:
		return 5
	case KindExploit:
		return 20
	case KindInject:
		return 15
	case KindDecrypt:
		return 10
	case KindOther:
		return 5
	}
	return 0
}
