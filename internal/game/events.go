package game

import (
	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/models"
	"github.com/dmitrijs2005/redline/internal/randx"
)

// WorldEventKind separates things that happen for the agent from things
// that happen to them.
type WorldEventKind int

const (
	Opportunity WorldEventKind = iota
	Threat
)

// Severity grades how urgently a world event should be presented.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// EventChoice is one way of answering a world event. Cost is debited from
// credits before the deltas apply; a choice the agent cannot afford is
// rejected outright.
type EventChoice struct {
	Label      string
	Cost       int64
	Credits    int64
	Reputation int64
	Heat       float64
}

// WorldEvent interrupts play with a situation and a set of choices.
type WorldEvent struct {
	ID          string
	Title       string
	Description string
	Kind        WorldEventKind
	Severity    Severity
	Choices     []EventChoice
}

// The catalog is split into pools gated by profile state: running hot or
// carrying serious reputation changes what the world throws at you.
var highHeatEvents = []WorldEvent{
	{
		ID:          "trace_initiated",
		Title:       "TRACE INITIATED",
		Description: "Security forces are attempting to trace your location!",
		Kind:        Threat,
		Severity:    SeverityCritical,
		Choices: []EventChoice{
			{Label: "Deploy countermeasures", Cost: 100, Heat: -30},
			{Label: "Go dark immediately", Reputation: -20, Heat: -50},
			{Label: "Risk it", Heat: 20},
		},
	},
	{
		ID:          "system_lockdown",
		Title:       "SYSTEM LOCKDOWN",
		Description: "Target system is initiating emergency lockdown procedures!",
		Kind:        Threat,
		Severity:    SeverityHigh,
		Choices: []EventChoice{
			{Label: "Force override", Heat: 25},
			{Label: "Extract and flee"},
		},
	},
}

var eliteEvents = []WorldEvent{
	{
		ID:          "elite_invitation",
		Title:       "ELITE INVITATION",
		Description: "You've been invited to join an elite hacker collective",
		Kind:        Opportunity,
		Severity:    SeverityLow,
		Choices: []EventChoice{
			{Label: "Accept invitation", Reputation: -50},
			{Label: "Decline respectfully", Reputation: 10},
		},
	},
	{
		ID:          "black_market_deal",
		Title:       "BLACK MARKET OPPORTUNITY",
		Description: "A mysterious contact offers rare zero-day exploits",
		Kind:        Opportunity,
		Severity:    SeverityMedium,
		Choices: []EventChoice{
			{Label: "Purchase exploits", Cost: 500},
			{Label: "Negotiate better price", Reputation: -10},
			{Label: "Report to authorities", Reputation: -30, Heat: -20},
		},
	},
}

var opportunityEvents = []WorldEvent{
	{
		ID:          "vulnerable_system",
		Title:       "VULNERABLE SYSTEM DETECTED",
		Description: "Scans reveal a highly vulnerable system with valuable data",
		Kind:        Opportunity,
		Severity:    SeverityLow,
		Choices: []EventChoice{
			{Label: "Exploit immediately", Credits: 200, Heat: 15},
			{Label: "Document and save for later"},
		},
	},
	{
		ID:          "data_cache",
		Title:       "ENCRYPTED DATA CACHE",
		Description: "You've discovered an encrypted data cache during your scan",
		Kind:        Opportunity,
		Severity:    SeverityLow,
		Choices: []EventChoice{
			{Label: "Decrypt now", Credits: 100},
			{Label: "Download for later"},
		},
	},
	{
		ID:          "backdoor_found",
		Title:       "BACKDOOR DISCOVERED",
		Description: "You've found an existing backdoor in the system",
		Kind:        Opportunity,
		Severity:    SeverityMedium,
		Choices: []EventChoice{
			{Label: "Use the backdoor"},
			{Label: "Replace with your own", Heat: 10},
			{Label: "Report and patch", Reputation: 25},
		},
	},
}

var threatEvents = []WorldEvent{
	{
		ID:          "honeypot",
		Title:       "HONEYPOT DETECTED",
		Description: "This system appears to be a honeypot trap!",
		Kind:        Threat,
		Severity:    SeverityHigh,
		Choices: []EventChoice{
			{Label: "Abort immediately", Reputation: -5},
			{Label: "Leave false trail", Cost: 50, Heat: -10},
			{Label: "Turn it to your advantage", Heat: 30},
		},
	},
	{
		ID:          "rival_hacker",
		Title:       "RIVAL HACKER DETECTED",
		Description: "Another hacker is targeting the same system!",
		Kind:        Threat,
		Severity:    SeverityMedium,
		Choices: []EventChoice{
			{Label: "Race to the prize", Heat: 20},
			{Label: "Collaborate", Reputation: 15},
			{Label: "Sabotage their attempt", Reputation: -10},
		},
	},
	{
		ID:          "ai_defense",
		Title:       "AI DEFENSE SYSTEM",
		Description: "An advanced AI is defending this system!",
		Kind:        Threat,
		Severity:    SeverityCritical,
		Choices: []EventChoice{
			{Label: "Engage in cyber warfare", Heat: 40},
			{Label: "Attempt to confuse it", Cost: 150},
			{Label: "Tactical retreat"},
		},
	},
}

// PickEvent draws a world event for the profile's current situation. Heat
// above 75 forces the dangerous pool; reputation above 1000 opens the
// elite one; otherwise it is a coin flip between opportunity and threat.
func PickEvent(p *models.Profile, rng randx.Source) WorldEvent {
	var pool []WorldEvent
	switch {
	case p.Heat > 75:
		pool = highHeatEvents
	case p.Reputation > 1000:
		pool = eliteEvents
	case rng.Float64() < 0.5:
		pool = opportunityEvents
	default:
		pool = threatEvents
	}
	return pool[rng.Intn(len(pool))]
}

// ResolveEvent applies one choice to the profile. The cost is checked
// first: an unaffordable choice returns ErrInsufficientCredits and leaves
// the profile untouched. Credits and reputation floor at zero, heat stays
// clamped.
func ResolveEvent(p *models.Profile, choice EventChoice) (*models.Profile, error) {
	if choice.Cost > p.Credits {
		return nil, common.ErrInsufficientCredits
	}

	next := p.Clone()
	next.Credits -= choice.Cost
	next.Credits += choice.Credits
	if next.Credits < 0 {
		next.Credits = 0
	}
	next.Reputation += choice.Reputation
	if next.Reputation < 0 {
		next.Reputation = 0
	}
	next.Heat = clampHeat(next.Heat + choice.Heat)
	return next, nil
}
