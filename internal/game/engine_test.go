package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/redline/internal/models"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// markAllUnlocked pre-completes the whole catalog so reward math can be
// asserted without unlock bonuses mixed in.
func markAllUnlocked(p *models.Profile) {
	for _, m := range Missions {
		p.CompletedMissions[m.ID] = true
	}
	for _, a := range Achievements {
		p.UnlockedAchievements[a.ID] = true
	}
}

func TestDecayHeat_LinearOverElapsedTime(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Heat = 80

	got := e.DecayHeat(p, t0.Add(30*time.Minute))

	assert.InDelta(t, 50, got.Heat, 1e-9)
	assert.Equal(t, t0.Add(30*time.Minute), got.LastHeatUpdate)
	// input profile untouched
	assert.InDelta(t, 80, p.Heat, 1e-9)
}

func TestDecayHeat_IdempotentWithinInstant(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Heat = 80

	now := t0.Add(10 * time.Minute)
	once := e.DecayHeat(p, now)
	twice := e.DecayHeat(once, now)

	assert.Equal(t, once.Heat, twice.Heat)
}

func TestDecayHeat_ClockRollback(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Heat = 80

	got := e.DecayHeat(p, t0.Add(-time.Hour))

	assert.InDelta(t, 80, got.Heat, 1e-9)
	assert.Equal(t, t0, got.LastHeatUpdate)
}

func TestDecayHeat_FloorsAtZero(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Heat = 5

	got := e.DecayHeat(p, t0.Add(time.Hour))

	assert.Zero(t, got.Heat)
}

func TestApply_ScanThenFailedExploit(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)

	p, events := e.Apply(p, Outcome{Kind: KindScan, Success: true, Difficulty: Trivial}, t0)

	assert.InDelta(t, 10, p.Heat, 1e-9)
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, 1, p.TotalScans)
	// 5 rep from the scan, 10 from First Steps, 10 from Network Explorer
	assert.EqualValues(t, 25, p.Reputation)
	assert.EqualValues(t, 1000+50+100, p.Credits)
	require.Len(t, events, 2)
	assert.Equal(t, EventMissionComplete, events[0].Type)
	assert.Equal(t, "INIT-001", events[0].ID)
	assert.Equal(t, EventAchievementUnlocked, events[1].Type)
	assert.Equal(t, "first_scan", events[1].ID)

	repBefore := p.Reputation
	p, _ = e.Apply(p, Outcome{Kind: KindExploit, Success: false, Difficulty: Hard}, t0)

	assert.InDelta(t, 35, p.Heat, 1e-9)
	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, repBefore, p.Reputation)
	assert.Equal(t, 1, p.FailedHacks)
}

func TestApply_AssociativeWithTime(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Heat = 40
	markAllUnlocked(p)

	scan := Outcome{Kind: KindScan, Success: true, Difficulty: Trivial}
	p, _ = e.Apply(p, scan, t0.Add(10*time.Minute))
	p, _ = e.Apply(p, scan, t0.Add(20*time.Minute))

	// 40 -10 decay +10 accrual, then again: no double-decay, none skipped
	assert.InDelta(t, 40, p.Heat, 1e-9)
	assert.Equal(t, t0.Add(20*time.Minute), p.LastHeatUpdate)
}

func TestApply_RewardScalesWithTierAndStreak(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Streak = 7
	markAllUnlocked(p)

	p, events := e.Apply(p, Outcome{Kind: KindExploit, Success: true, Difficulty: Hard}, t0)

	// 20 base x8 hard x1.1 streak bonus = 176
	assert.EqualValues(t, 176, p.Reputation)
	assert.EqualValues(t, 1000+1760, p.Credits)
	assert.Equal(t, 8, p.Streak)
	assert.Equal(t, 1, p.SuccessfulHacks)
	assert.Equal(t, 1, p.SystemsCompromised)
	// catalog fully pre-unlocked, band change is the only event
	require.Len(t, events, 1)
	assert.Equal(t, EventLevelChange, events[0].Type)
	assert.Equal(t, "Script Kiddie", events[0].Title)
}

func TestApply_FailureHeatHasFloor(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	markAllUnlocked(p)

	// decrypt costs 5 on success but a failure never draws less than 15
	p, _ = e.Apply(p, Outcome{Kind: KindDecrypt, Success: false, Difficulty: Easy}, t0)

	assert.InDelta(t, 15, p.Heat, 1e-9)
	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, 0, p.FilesDecrypted)
}

func TestApply_TraceAtHeatCeiling(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Heat = 90
	p.Reputation = 200
	p.Streak = 12
	markAllUnlocked(p)

	p, events := e.Apply(p, Outcome{Kind: KindExploit, Success: false, Difficulty: Hard}, t0)

	assert.Equal(t, 1, p.TimesTraced)
	assert.EqualValues(t, 500, p.Credits)
	assert.EqualValues(t, 180, p.Reputation)
	assert.Equal(t, 0, p.Streak)
	assert.InDelta(t, 50, p.Heat, 1e-9)

	require.NotEmpty(t, events)
	assert.Equal(t, EventTraced, events[0].Type)
}

func TestApply_MissionCompletionIsIdempotent(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)

	p, _ = e.Apply(p, Outcome{Kind: KindScan, Success: true, Difficulty: Trivial}, t0)
	require.True(t, p.CompletedMissions["INIT-001"])
	repAfterFirst := p.Reputation

	p, events := e.Apply(p, Outcome{Kind: KindScan, Success: true, Difficulty: Trivial}, t0)

	for _, ev := range events {
		assert.NotEqual(t, "INIT-001", ev.ID)
		assert.NotEqual(t, "first_scan", ev.ID)
	}
	// only the scan reward itself, no repeated mission or unlock payout
	assert.EqualValues(t, repAfterFirst+5, p.Reputation)
}

func TestApply_NoneKindOnlyDecays(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)
	p.Heat = 30
	p.Streak = 3

	p, events := e.Apply(p, Outcome{Kind: KindNone}, t0.Add(10*time.Minute))

	assert.InDelta(t, 20, p.Heat, 1e-9)
	assert.Equal(t, 3, p.Streak)
	assert.EqualValues(t, 0, p.Reputation)
	assert.Empty(t, events)
}

func TestRecordLogin_FirstLogin(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)

	now := t0.Add(time.Minute)
	p, events := e.RecordLogin(p, now)

	assert.Equal(t, 1, p.LoginCount)
	require.NotNil(t, p.LastLogin)
	assert.Equal(t, now, *p.LastLogin)
	assert.True(t, p.UnlockedAchievements["first_login"])
	assert.EqualValues(t, 10, p.Reputation)

	require.Len(t, events, 1)
	assert.Equal(t, EventAchievementUnlocked, events[0].Type)
	assert.Equal(t, "first_login", events[0].ID)
}

func TestRecordLogin_SecondLoginUnlocksNothing(t *testing.T) {
	e := NewEngine(1.0)
	p := models.NewProfile("neo", 1000, t0)

	p, _ = e.RecordLogin(p, t0)
	p, events := e.RecordLogin(p, t0.Add(time.Hour))

	assert.Equal(t, 2, p.LoginCount)
	assert.EqualValues(t, 10, p.Reputation)
	assert.Empty(t, events)
}

func TestStreakMultiplier_Bands(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 1.0}, {4, 1.0},
		{5, 1.1}, {9, 1.1},
		{10, 1.25}, {19, 1.25},
		{20, 1.5}, {29, 1.5},
		{30, 1.75}, {49, 1.75},
		{50, 2.0}, {120, 2.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StreakMultiplier(tt.streak), "streak %d", tt.streak)
	}
}

func TestCatalogs_AreWellFormed(t *testing.T) {
	missionIDs := map[string]bool{}
	for _, m := range Missions {
		assert.False(t, missionIDs[m.ID], "duplicate mission %s", m.ID)
		missionIDs[m.ID] = true
		assert.NotNil(t, m.Satisfied)
		assert.Equal(t, m.Reputation*10, m.Credits())
	}
	require.Len(t, Missions, 6)

	achievementIDs := map[string]bool{}
	for _, a := range Achievements {
		assert.False(t, achievementIDs[a.ID], "duplicate achievement %s", a.ID)
		achievementIDs[a.ID] = true
		assert.NotNil(t, a.Satisfied)
		assert.Positive(t, a.Rarity.Points())
	}
	require.Len(t, Achievements, 10)
}
