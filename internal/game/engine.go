// Package game holds the progression rules of the simulation: heat decay
// and accrual, reputation and credit rewards, streaks, levels, missions,
// achievements and random world events. Everything in it is a pure function
// of (profile, outcome, now); the only randomness in the system lives in
// the command dispatcher and event picker behind an injectable source.
package game

import (
	"time"

	"github.com/dmitrijs2005/redline/internal/models"
)

// Engine applies outcomes to profiles. It carries no mutable state, only
// the configured decay rate, so one instance is shared by all callers.
type Engine struct {
	decayRate float64 // heat per minute
}

func NewEngine(decayRate float64) *Engine {
	return &Engine{decayRate: decayRate}
}

// DecayHeat returns a copy of the profile with heat decayed linearly over
// the wall-clock time since the last update and the anchor moved to now.
// A clock that has rolled backwards counts as zero elapsed time and keeps
// the later anchor, so heat cannot be washed away by changing the clock.
func (e *Engine) DecayHeat(p *models.Profile, now time.Time) *models.Profile {
	next := p.Clone()
	elapsed := now.Sub(next.LastHeatUpdate)
	if elapsed <= 0 {
		return next
	}
	next.Heat = clampHeat(next.Heat - e.decayRate*elapsed.Minutes())
	next.LastHeatUpdate = now
	return next
}

// Apply folds one outcome into the profile and returns the new profile
// plus the notable events it produced, in the order they happened: trace,
// mission completions, achievement unlocks, level change. The input
// profile is never mutated.
func (e *Engine) Apply(p *models.Profile, out Outcome, now time.Time) (*models.Profile, []Event) {
	next := e.DecayHeat(p, now)
	entryLevel := LevelForReputation(next.Reputation)

	var events []Event

	if out.Kind != KindNone {
		cost := heatCost(out.Kind)
		if !out.Success && cost < failureHeat {
			cost = failureHeat
		}
		next.Heat = clampHeat(next.Heat + cost)

		if next.Heat >= 100 {
			events = append(events, trace(next))
		}

		if out.Success {
			rep := int64(float64(baseReward(out.Kind)*out.Difficulty.Multiplier()) * StreakMultiplier(next.Streak))
			next.Reputation += rep
			next.Credits += rep * 10
			next.Streak++
		} else {
			next.Streak = 0
		}

		recordCounters(next, out)
	}

	events = append(events, checkMissions(next)...)
	events = append(events, checkAchievements(next)...)

	if l := LevelForReputation(next.Reputation); l != entryLevel {
		events = append(events, Event{Type: EventLevelChange, Title: l.String()})
	}

	return next, events
}

// RecordLogin folds a successful login into the profile: the login counter
// and timestamp move, heat decays to now, and unlock predicates run so
// login-gated achievements fire.
func (e *Engine) RecordLogin(p *models.Profile, now time.Time) (*models.Profile, []Event) {
	next := e.DecayHeat(p, now)
	entryLevel := LevelForReputation(next.Reputation)

	next.LoginCount++
	t := now
	next.LastLogin = &t

	events := checkMissions(next)
	events = append(events, checkAchievements(next)...)

	if l := LevelForReputation(next.Reputation); l != entryLevel {
		events = append(events, Event{Type: EventLevelChange, Title: l.String()})
	}

	return next, events
}

// trace is the penalty for letting heat hit the ceiling: the agent is
// located, loses half their credits and a tenth of their reputation, the
// streak dies, and heat falls back to 50 while the dust settles.
func trace(p *models.Profile) Event {
	p.TimesTraced++
	p.Credits /= 2
	p.Reputation -= p.Reputation / 10
	p.Streak = 0
	p.Heat = 50
	return Event{Type: EventTraced, Title: "TRACE COMPLETE"}
}

func recordCounters(p *models.Profile, out Outcome) {
	switch out.Kind {
	case KindScan:
		if out.Success {
			p.TotalScans++
		}
	case KindExploit:
		if out.Success {
			p.SuccessfulHacks++
			p.SystemsCompromised++
		} else {
			p.FailedHacks++
		}
	case KindInject:
		if out.Success {
			p.SuccessfulHacks++
		} else {
			p.FailedHacks++
		}
	case KindDecrypt:
		if out.Success {
			p.FilesDecrypted++
		}
	}
}

// checkMissions completes every mission whose predicate is newly
// satisfied, granting its one-time reward. Already-completed missions are
// skipped, so re-evaluation never duplicates a payout.
func checkMissions(p *models.Profile) []Event {
	var events []Event
	for _, m := range Missions {
		if p.CompletedMissions[m.ID] || !m.Satisfied(p) {
			continue
		}
		p.CompletedMissions[m.ID] = true
		p.Reputation += m.Reputation
		p.Credits += m.Credits()
		events = append(events, Event{
			Type:       EventMissionComplete,
			ID:         m.ID,
			Title:      m.Name,
			Reputation: m.Reputation,
			Credits:    m.Credits(),
		})
	}
	return events
}

// checkAchievements unlocks every achievement whose predicate holds,
// adding its point value to reputation. Unlocks earlier in the pass count
// toward predicates later in it; anything crossed afterwards is caught on
// the next apply.
func checkAchievements(p *models.Profile) []Event {
	var events []Event
	for _, a := range Achievements {
		if p.UnlockedAchievements[a.ID] || !a.Satisfied(p) {
			continue
		}
		p.UnlockedAchievements[a.ID] = true
		p.Reputation += a.Rarity.Points()
		events = append(events, Event{
			Type:       EventAchievementUnlocked,
			ID:         a.ID,
			Title:      a.Name,
			Reputation: a.Rarity.Points(),
		})
	}
	return events
}

func clampHeat(h float64) float64 {
	if h < 0 {
		return 0
	}
	if h > 100 {
		return 100
	}
	return h
}
