package game

// Level is the agent rank derived from reputation. It is never stored;
// every read recomputes it from the band table so the two cannot drift.
type Level int

const (
	Nobody Level = iota
	Wannabe
	ScriptKiddie
	Amateur
	Competent
	Skilled
	Expert
	Master
	Elite
	Legendary
	Mythical
)

// levelFloors holds the lower bound of each band. Bands are
// lower-inclusive, upper-exclusive; Mythical is unbounded above.
var levelFloors = [...]int64{0, 50, 150, 300, 500, 750, 1000, 1500, 2000, 3000, 5000}

// LevelForReputation maps a reputation score onto its band.
func LevelForReputation(rep int64) Level {
	for l := Mythical; l > Nobody; l-- {
		if rep >= levelFloors[l] {
			return l
		}
	}
	return Nobody
}

func (l Level) String() string {
	switch l {
	case Nobody:
		return "Nobody"
	case Wannabe:
		return "Wannabe"
	case ScriptKiddie:
		return "Script Kiddie"
	case Amateur:
		return "Amateur Hacker"
	case Competent:
		return "Competent Hacker"
	case Skilled:
		return "Skilled Hacker"
	case Expert:
		return "Expert Hacker"
	case Master:
		return "Master Hacker"
	case Elite:
		return "Elite Hacker"
	case Legendary:
		return "Legendary Hacker"
	case Mythical:
		return "Mythical Hacker"
	}
	return "Unknown"
}

// Floor is the reputation where this band begins.
func (l Level) Floor() int64 {
	return levelFloors[l]
}

// NextFloor is the reputation needed for the next band; ok is false at the
// top band.
func (l Level) NextFloor() (int64, bool) {
	if l >= Mythical {
		return 0, false
	}
	return levelFloors[l+1], true
}

// LevelProgress is how far into the current band a reputation score sits,
// as a percentage. The top band always reports 100.
func LevelProgress(rep int64) float64 {
	l := LevelForReputation(rep)
	next, ok := l.NextFloor()
	if !ok {
		return 100
	}
	pct := float64(rep-l.Floor()) / float64(next-l.Floor()) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
