package commands

import (
	"hash/fnv"
	"strings"

	"github.com/dmitrijs2005/redline/internal/game"
)

// targetTiers declares the difficulty of well-known hosts. Anything not
// listed falls back to a hashed tier so an unknown target is still the
// same fight every time.
var targetTiers = map[string]game.Difficulty{
	"localhost":      game.Trivial,
	"127.0.0.1":      game.Trivial,
	"192.168.1.1":    game.Easy,
	"10.0.0.1":       game.Easy,
	"router.local":   game.Easy,
	"smallbiz.com":   game.Easy,
	"megacorp.com":   game.Medium,
	"datacenter.net": game.Medium,
	"cryptobank.io":  game.Hard,
	"govnet.gov":     game.Hard,
	"blacksite.mil":  game.Extreme,
	"orbital.sat":    game.Extreme,
	"quantum.vault":  game.Impossible,
}

// exploitBonus lists known exploit names and the success-chance bonus a
// correctly matched one grants.
var exploitBonus = map[string]float64{
	"eternalblue":    0.20,
	"zerologon":      0.20,
	"log4shell":      0.20,
	"bluekeep":       0.15,
	"heartbleed":     0.15,
	"shellshock":     0.15,
	"printnightmare": 0.15,
	"dirtycow":       0.10,
	"sqlslammer":     0.10,
	"spectre":        0.05,
}

// TargetDifficulty returns the declared tier of a known host, or a
// deterministic fallback tier in Easy..Extreme derived from the target
// name.
func TargetDifficulty(target string) game.Difficulty {
	key := strings.ToLower(target)
	if d, ok := targetTiers[key]; ok {
		return d
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return game.Easy + game.Difficulty(h.Sum32()%4)
}

// ExploitBonus returns the success-chance bonus for an exploit name, zero
// for anything not in the catalog.
func ExploitBonus(name string) float64 {
	return exploitBonus[strings.ToLower(name)]
}
