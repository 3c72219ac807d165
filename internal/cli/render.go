package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/redline/internal/commands"
	"github.com/dmitrijs2005/redline/internal/game"
	"github.com/dmitrijs2005/redline/internal/models"
)

const rule = "═══════════════════════════════════════════════════════════════"

func printBanner() {
	printlnFn()
	printlnFn(rule)
	printlnFn("              R E D L I N E   T E R M I N A L")
	printlnFn(rule)
	printlnFn("  Unauthorized access is a crime. Proceeding anyway.")
	printlnFn("  Type 'help' for commands.")
	printlnFn()
}

func renderWelcome(p *models.Profile) {
	level := game.LevelForReputation(p.Reputation)
	printlnFn()
	if p.LoginCount <= 1 {
		printfFn("  First connection established. Welcome to the grid, %s.\n", p.Username)
	} else {
		printfFn("  Welcome back, %s. Login #%d.\n", p.Username, p.LoginCount)
	}
	printfFn("  Clearance: %s | Reputation: %d | Credits: %d\n", level, p.Reputation, p.Credits)
	printlnFn()
}

func renderHelp(args []string) {
	if len(args) > 0 {
		cmd, ok := commands.Lookup(args[0])
		if !ok {
			printlnFn("No such command:", args[0])
			return
		}
		printlnFn()
		printfFn("  %s: %s\n", cmd.Name, cmd.Description)
		printfFn("  Usage: %s\n", cmd.Usage)
		if len(cmd.Aliases) > 0 {
			printfFn("  Aliases: %s\n", strings.Join(cmd.Aliases, ", "))
		}
		printlnFn()
		return
	}

	printlnFn()
	printlnFn(rule)
	printlnFn("                      COMMAND REFERENCE")
	printlnFn(rule)
	for _, cmd := range commands.All() {
		printfFn("  %-10s %s\n", cmd.Name, cmd.Description)
	}
	printlnFn(rule)
	printlnFn("  Type 'help <command>' for usage and aliases.")
	printlnFn()
}

func clearScreen() {
	printfFn("\x1b[2J\x1b[H")
}

func renderStatus(p *models.Profile) {
	level := game.LevelForReputation(p.Reputation)

	printlnFn()
	printlnFn(rule)
	printlnFn("                        AGENT STATUS")
	printlnFn(rule)
	printlnFn()
	printfFn("  Agent:      %s\n", p.Username)
	printfFn("  Clearance:  %s%s\n", level, nextLevelHint(p.Reputation))
	printfFn("  Reputation: %d\n", p.Reputation)
	printfFn("  Credits:    %d\n", p.Credits)
	printfFn("  Heat Level: %s\n", heatBar(p.Heat))
	printfFn("  Streak:     %d (%s)\n", p.Streak, game.StreakLabel(p.Streak))
	printlnFn()
	printfFn("  Scans:      %d\n", p.TotalScans)
	printfFn("  Hacks:      %d successful, %d failed\n", p.SuccessfulHacks, p.FailedHacks)
	printfFn("  Decrypted:  %d files\n", p.FilesDecrypted)
	printfFn("  Systems:    %d compromised\n", p.SystemsCompromised)
	printfFn("  Traced:     %d times\n", p.TimesTraced)
	printlnFn()
	printfFn("  Missions:     %d/%d complete\n", len(p.CompletedMissions), len(game.Missions))
	printfFn("  Achievements: %d/%d unlocked\n", len(p.UnlockedAchievements), len(game.Achievements))
	printlnFn(rule)
	printlnFn()
}

// nextLevelHint shows how far the agent is from the next clearance band,
// or nothing at the top of the ladder.
func nextLevelHint(rep int64) string {
	level := game.LevelForReputation(rep)
	if _, ok := level.NextFloor(); !ok {
		return ""
	}
	return fmt.Sprintf(" (%.0f%% to %s)", game.LevelProgress(rep), level+1)
}

// heatBar renders heat as a 20-cell gauge, the same shape the rest of the
// grid uses for trace pressure.
func heatBar(heat float64) string {
	const width = 20
	filled := int(heat / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, displayHeat(heat))
}

func displayHeat(heat float64) int {
	h := int(math.Round(heat))
	if h < 0 {
		return 0
	}
	if h > 100 {
		return 100
	}
	return h
}

func renderMissions(p *models.Profile) {
	printlnFn()
	printlnFn(rule)
	printlnFn("                      MISSION BRIEFING")
	printlnFn(rule)
	printlnFn()

	for _, m := range game.Missions {
		marker := "OPEN"
		if p.CompletedMissions[m.ID] {
			marker = "DONE"
		}
		printfFn("  [%s] %s: %s\n", marker, m.ID, m.Name)
		printfFn("         %s\n", m.Description)
		printfFn("         Risk: %s | Reward: %d reputation, %d credits\n",
			strings.ToUpper(m.Difficulty.String()), m.Reputation, m.Credits())
		printlnFn()
	}

	printlnFn(rule)
	printlnFn("                        ACHIEVEMENTS")
	printlnFn(rule)
	printlnFn()
	for _, ach := range game.Achievements {
		marker := " "
		if p.UnlockedAchievements[ach.ID] {
			marker = "x"
		}
		printfFn("  [%s] %s (%s, %d pts): %s\n",
			marker, ach.Name, ach.Rarity, ach.Rarity.Points(), ach.Description)
	}
	printlnFn()
}

func renderOutcome(out game.Outcome) {
	target := out.Target
	if target == "" {
		target = "the local segment"
	}

	switch out.Kind {
	case game.KindScan:
		if out.Success {
			printfFn("  [+] Scan complete. %s mapped, open ports logged.\n", target)
		} else {
			printfFn("  [-] Scan aborted. Countermeasures on %s flagged the probe.\n", target)
		}
	case game.KindExploit:
		if out.Success {
			printfFn("  [+] Exploit landed. Shell obtained on %s.\n", target)
		} else {
			printfFn("  [-] Exploit failed. %s patched itself and is watching now.\n", target)
		}
	case game.KindDecrypt:
		if out.Success {
			printfFn("  [+] Cipher broken. Contents of %s recovered.\n", target)
		} else {
			printfFn("  [-] Decryption failed. The key space runs too deep.\n")
		}
	case game.KindInject:
		if out.Success {
			printfFn("  [+] Payload injected. %s answers to you now.\n", target)
		} else {
			printfFn("  [-] Injection blocked by runtime defenses on %s.\n", target)
		}
	default:
		if out.Success {
			printfFn("  [+] Operation complete. Data secured from %s.\n", target)
		} else {
			printfFn("  [-] Operation failed. The connection went dark.\n")
		}
	}
	printfFn("      Difficulty: %s\n", out.Difficulty)
}

// renderVitals trails every game action with the numbers that matter.
func renderVitals(p *models.Profile) {
	printfFn("      Credits: %d | Reputation: %d | Heat: %d%%\n", p.Credits, p.Reputation, p.HeatLevel())
}

func printEvents(events []game.Event) {
	for _, ev := range events {
		switch ev.Type {
		case game.EventTraced:
			printlnFn()
			printlnFn("  !!! TRACE COMPLETE !!!")
			printlnFn("  They found you. The emergency disconnect burned half your")
			printlnFn("  credits and a cut of your reputation. Lay low.")
		case game.EventMissionComplete:
			printfFn("  >> MISSION COMPLETE: %s (+%d rep, +%d credits)\n", ev.Title, ev.Reputation, ev.Credits)
		case game.EventAchievementUnlocked:
			printfFn("  >> ACHIEVEMENT UNLOCKED: %s (+%d rep)\n", ev.Title, ev.Reputation)
		case game.EventLevelChange:
			printfFn("  >> CLEARANCE CHANGED: you are now %s\n", ev.Title)
		}
	}
}

func renderWorldEvent(ev game.WorldEvent) {
	printlnFn()
	printlnFn(rule)
	printfFn("  INCOMING TRANSMISSION [%s]: %s\n", strings.ToUpper(ev.Severity.String()), ev.Title)
	printlnFn(rule)
	printfFn("  %s\n", ev.Description)
	printlnFn()
	for i, c := range ev.Choices {
		printfFn("  %d) %s%s\n", i+1, c.Label, choiceTag(c))
	}
}

func choiceTag(c game.EventChoice) string {
	if c.Cost > 0 {
		return fmt.Sprintf(" [costs %d credits]", c.Cost)
	}
	return ""
}

func renderResolution(choice game.EventChoice, p *models.Profile) {
	printfFn("  %s. Credits: %d | Reputation: %d | Heat: %d%%\n",
		choice.Label, p.Credits, p.Reputation, p.HeatLevel())
}
