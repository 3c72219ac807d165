package game

// CommandKind classifies a command for heat and reward accounting.
type CommandKind int

const (
	// KindNone marks read-only commands that never touch the profile.
	KindNone CommandKind = iota
	KindScan
	KindExploit
	KindDecrypt
	KindInject
	KindOther
)

func (k CommandKind) String() string {
	switch k {
	case KindScan:
		return "scan"
	case KindExploit:
		return "exploit"
	case KindDecrypt:
		return "decrypt"
	case KindInject:
		return "inject"
	case KindOther:
		return "other"
	}
	return "none"
}

// Outcome is the resolved result of one command, ready to be applied to a
// profile. The dispatcher produces it; the engine consumes it.
type Outcome struct {
	Kind       CommandKind
	Success    bool
	Difficulty Difficulty
	Target     string
}

// EventType tags the notable side effects of applying an outcome.
type EventType int

const (
	EventLevelChange EventType = iota
	EventMissionComplete
	EventAchievementUnlocked
	EventTraced
)

// Event is surfaced by the engine so the UI can announce what just
// happened. Reputation and Credits carry the granted reward where one
// applies.
type Event struct {
	Type       EventType
	ID         string
	Title      string
	Reputation int64
	Credits    int64
}
