package models

import (
	"math"
	"time"
)

// Profile is one agent's persistent progression state. All mutation goes
// through the progression engine; the stores only load and save it.
type Profile struct {
	// Username links the profile 1:1 to its Credential.
	Username string

	// Reputation is the cumulative skill score; never negative.
	Reputation int64

	// Heat is the detection-risk score in [0,100]. It is kept fractional
	// so continuous time decay stays exact; displays round it.
	Heat float64

	// Credits is the spendable balance; never negative.
	Credits int64

	// Streak counts consecutive successful operations; any failure
	// resets it.
	Streak int

	LoginCount int
	LastLogin  *time.Time

	// LastHeatUpdate anchors lazy heat decay.
	LastHeatUpdate time.Time

	// Counters driving mission and achievement predicates.
	TotalScans         int
	SuccessfulHacks    int
	FailedHacks        int
	FilesDecrypted     int
	SystemsCompromised int
	TimesTraced        int

	// CompletedMissions holds the IDs of missions already completed.
	CompletedMissions map[string]bool

	// UnlockedAchievements holds the IDs of achievements already unlocked.
	UnlockedAchievements map[string]bool

	CreatedAt time.Time
}

// NewProfile returns the empty profile created alongside a fresh account.
func NewProfile(username string, startingCredits int64, now time.Time) *Profile {
	return &Profile{
		Username:             username,
		Credits:              startingCredits,
		LastHeatUpdate:       now,
		CompletedMissions:    make(map[string]bool),
		UnlockedAchievements: make(map[string]bool),
		CreatedAt:            now,
	}
}

// Clone returns a deep copy. The progression engine works on clones so the
// caller's snapshot is never mutated.
func (p *Profile) Clone() *Profile {
	cp := *p
	if p.LastLogin != nil {
		t := *p.LastLogin
		cp.LastLogin = &t
	}
	cp.CompletedMissions = make(map[string]bool, len(p.CompletedMissions))
	for id := range p.CompletedMissions {
		cp.CompletedMissions[id] = true
	}
	cp.UnlockedAchievements = make(map[string]bool, len(p.UnlockedAchievements))
	for id := range p.UnlockedAchievements {
		cp.UnlockedAchievements[id] = true
	}
	return &cp
}

// HeatLevel is the display value of Heat: rounded and clamped to [0,100].
func (p *Profile) HeatLevel() int {
	h := int(math.Round(p.Heat))
	if h < 0 {
		return 0
	}
	if h > 100 {
		return 100
	}
	return h
}
