package game

import "github.com/dmitrijs2005/redline/internal/models"

// Rarity grades achievements and fixes their point value.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	}
	return "unknown"
}

// Points is the reputation granted when an achievement of this rarity
// unlocks.
func (r Rarity) Points() int64 {
	switch r {
	case RarityCommon:
		return 10
	case RarityUncommon:
		return 25
	case RarityRare:
		return 50
	case RarityEpic:
		return 100
	case RarityLegendary:
		return 250
	}
	return 0
}

// Achievement is one entry of the fixed achievement catalog, unlocked by a
// one-shot predicate check after every profile mutation.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Satisfied   func(p *models.Profile) bool
}

// Achievements is the full catalog, ordered so cheap milestones unlock
// before the reputation-gated ones their points feed into.
var Achievements = []Achievement{
	{
		ID:          "first_login",
		Name:        "Welcome to the Grid",
		Description: "Successfully login for the first time",
		Rarity:      RarityCommon,
		Satisfied:   func(p *models.Profile) bool { return p.LoginCount >= 1 },
	},
	{
		ID:          "first_scan",
		Name:        "Network Explorer",
		Description: "Complete your first network scan",
		Rarity:      RarityCommon,
		Satisfied:   func(p *models.Profile) bool { return p.TotalScans >= 1 },
	},
	{
		ID:          "first_blood",
		Name:        "First Blood",
		Description: "Successfully exploit your first system",
		Rarity:      RarityUncommon,
		Satisfied:   func(p *models.Profile) bool { return p.SuccessfulHacks >= 1 },
	},
	{
		ID:          "code_breaker",
		Name:        "Code Breaker",
		Description: "Decrypt 10 encrypted files",
		Rarity:      RarityUncommon,
		Satisfied:   func(p *models.Profile) bool { return p.FilesDecrypted >= 10 },
	},
	{
		ID:          "decrypt_master",
		Name:        "Master Decryptor",
		Description: "Decrypt 50 encrypted files",
		Rarity:      RarityRare,
		Satisfied:   func(p *models.Profile) bool { return p.FilesDecrypted >= 50 },
	},
	{
		ID:          "ghost",
		Name:        "Ghost in the Machine",
		Description: "Pull off 10 hacks while keeping heat below 20%",
		Rarity:      RarityRare,
		Satisfied:   func(p *models.Profile) bool { return p.SuccessfulHacks >= 10 && p.Heat < 20 },
	},
	{
		ID:          "hot_streak",
		Name:        "On Fire",
		Description: "Chain 10 successful operations in a row",
		Rarity:      RarityRare,
		Satisfied:   func(p *models.Profile) bool { return p.Streak >= 10 },
	},
	{
		ID:          "respected",
		Name:        "Notorious",
		Description: "Reach 100 reputation points",
		Rarity:      RarityUncommon,
		Satisfied:   func(p *models.Profile) bool { return p.Reputation >= 100 },
	},
	{
		ID:          "feared",
		Name:        "Elite Hacker",
		Description: "Reach 1000 reputation points",
		Rarity:      RarityEpic,
		Satisfied:   func(p *models.Profile) bool { return p.Reputation >= 1000 },
	},
	{
		ID:          "untouchable",
		Name:        "Digital Legend",
		Description: "Reach 5000 reputation points",
		Rarity:      RarityLegendary,
		Satisfied:   func(p *models.Profile) bool { return p.Reputation >= 5000 },
	},
}
