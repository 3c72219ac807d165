package commands

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/game"
	"github.com/dmitrijs2005/redline/internal/randx"
)

// baseSuccessChance decides target-less commands: a plain coin flip.
const baseSuccessChance = 0.5

// maxSuccessChance caps the roll so no attack is ever a sure thing.
const maxSuccessChance = 0.95

// Dispatcher turns command lines into outcomes. The roll against the
// success chance is the only non-determinism in the whole system, so a
// seeded source replays every session decision exactly.
type Dispatcher struct {
	rng randx.Source
}

func NewDispatcher(rng randx.Source) *Dispatcher {
	return &Dispatcher{rng: rng}
}

// Dispatch resolves one command line. Unknown commands fail with
// ErrUnknownCommand and never touch the profile. Read-only commands come
// back as KindNone without consuming a roll, so randomness stays aligned
// across replays.
func (d *Dispatcher) Dispatch(line string) (game.Outcome, error) {
	name, args := Parse(line)

	cmd, ok := Lookup(name)
	if !ok {
		return game.Outcome{}, fmt.Errorf("%w: %q", common.ErrUnknownCommand, name)
	}

	if cmd.Kind == game.KindNone {
		return game.Outcome{Kind: game.KindNone}, nil
	}

	pos := positional(args)

	tier := game.Trivial
	chance := baseSuccessChance
	target := ""
	if len(pos) > 0 {
		target = pos[0]
		tier = TargetDifficulty(target)
		chance = tier.SuccessChance()
		if cmd.Kind == game.KindExploit && len(pos) > 1 {
			chance += ExploitBonus(pos[1])
			if chance > maxSuccessChance {
				chance = maxSuccessChance
			}
		}
	}

	return game.Outcome{
		Kind:       cmd.Kind,
		Success:    d.rng.Float64() < chance,
		Difficulty: tier,
		Target:     target,
	}, nil
}

// positional strips flag tokens, leaving the opaque arguments (target,
// exploit name, file) in order.
func positional(args []string) []string {
	var out []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		out = append(out, a)
	}
	return out
}
