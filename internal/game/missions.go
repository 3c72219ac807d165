package game

import "github.com/dmitrijs2005/redline/internal/models"

// Mission is one entry of the fixed mission catalog. Completion is decided
// by a predicate over the profile, so progress made before the mission is
// ever looked at still counts.
type Mission struct {
	ID          string
	Name        string
	Description string
	Difficulty  Difficulty
	Reputation  int64
	Satisfied   func(p *models.Profile) bool
}

// Credits is the one-time credit reward, always ten times the reputation
// reward.
func (m Mission) Credits() int64 {
	return m.Reputation * 10
}

// Missions is the full catalog in briefing order.
var Missions = []Mission{
	{
		ID:          "INIT-001",
		Name:        "First Steps",
		Description: "Learn the basics of the system",
		Difficulty:  Trivial,
		Reputation:  10,
		Satisfied:   func(p *models.Profile) bool { return p.TotalScans >= 1 },
	},
	{
		ID:          "RECON-001",
		Name:        "Network Cartographer",
		Description: "Map out a corporate network",
		Difficulty:  Easy,
		Reputation:  25,
		Satisfied:   func(p *models.Profile) bool { return p.TotalScans >= 5 },
	},
	{
		ID:          "DATA-001",
		Name:        "Code Breaker",
		Description: "Extract sensitive data from a secure server",
		Difficulty:  Medium,
		Reputation:  50,
		Satisfied:   func(p *models.Profile) bool { return p.FilesDecrypted >= 3 },
	},
	{
		ID:          "CORP-001",
		Name:        "Corporate Infiltration",
		Description: "Infiltrate a rival corporation's mainframe",
		Difficulty:  Hard,
		Reputation:  100,
		Satisfied:   func(p *models.Profile) bool { return p.SystemsCompromised >= 2 },
	},
	{
		ID:          "GHOST-001",
		Name:        "Ghost Protocol",
		Description: "Complete operations without detection",
		Difficulty:  Extreme,
		Reputation:  200,
		Satisfied:   func(p *models.Profile) bool { return p.SuccessfulHacks >= 5 && p.Heat < 25 },
	},
	{
		ID:          "IMPOSSIBLE-001",
		Name:        "The Heist",
		Description: "Hack the unhackable",
		Difficulty:  Impossible,
		Reputation:  500,
		Satisfied:   func(p *models.Profile) bool { return p.SystemsCompromised >= 10 && p.Reputation >= 2000 },
	},
}
