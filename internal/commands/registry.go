// Package commands resolves typed command lines into game outcomes. The
// registry fixes the command set and its aliases; the dispatcher decides
// success with a single roll behind an injectable randomness source.
package commands

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/redline/internal/game"
)

// Command describes one entry of the fixed command set.
type Command struct {
	Name        string
	Description string
	Usage       string
	Aliases     []string
	Kind        game.CommandKind
}

var registry = []Command{
	{
		Name:        "help",
		Description: "Display available commands and their usage",
		Usage:       "help [command]",
		Aliases:     []string{"?", "h"},
		Kind:        game.KindNone,
	},
	{
		Name:        "scan",
		Description: "Scan network for targets and vulnerabilities",
		Usage:       "scan [target]",
		Aliases:     []string{"nmap", "recon"},
		Kind:        game.KindScan,
	},
	{
		Name:        "exploit",
		Description: "Deploy exploit against identified vulnerability",
		Usage:       "exploit <target> [exploit_name]",
		Aliases:     []string{"pwn", "attack"},
		Kind:        game.KindExploit,
	},
	{
		Name:        "decrypt",
		Description: "Decrypt intercepted data or files",
		Usage:       "decrypt [file]",
		Aliases:     []string{"decode", "decipher"},
		Kind:        game.KindDecrypt,
	},
	{
		Name:        "inject",
		Description: "Inject payload into target system",
		Usage:       "inject <target> [payload_type]",
		Aliases:     []string{"payload", "implant"},
		Kind:        game.KindInject,
	},
	{
		Name:        "trace",
		Description: "Trace network route to target",
		Usage:       "trace <target>",
		Aliases:     []string{"traceroute", "track"},
		Kind:        game.KindOther,
	},
	{
		Name:        "status",
		Description: "Display current agent status and statistics",
		Usage:       "status",
		Aliases:     []string{"stats", "info"},
		Kind:        game.KindNone,
	},
	{
		Name:        "mission",
		Description: "Access mission briefings and objectives",
		Usage:       "mission",
		Aliases:     []string{"objective", "task"},
		Kind:        game.KindNone,
	},
	{
		Name:        "darkweb",
		Description: "Access underground marketplace",
		Usage:       "darkweb",
		Aliases:     []string{"market", "underground"},
		Kind:        game.KindOther,
	},
	{
		Name:        "firewall",
		Description: "Analyze and breach firewall defenses",
		Usage:       "firewall <target> [bypass|analyze]",
		Aliases:     []string{"fw", "barrier"},
		Kind:        game.KindExploit,
	},
	{
		Name:        "clear",
		Description: "Clear terminal screen",
		Usage:       "clear",
		Aliases:     []string{"cls", "cl"},
		Kind:        game.KindNone,
	},
	{
		Name:        "logout",
		Description: "Disconnect from the system",
		Usage:       "logout",
		Aliases:     []string{"exit", "quit", "disconnect"},
		Kind:        game.KindNone,
	},
}

// Lookup resolves a command by its name or any alias.
func Lookup(name string) (Command, bool) {
	for _, cmd := range registry {
		if cmd.Name == name {
			return cmd, true
		}
		for _, alias := range cmd.Aliases {
			if alias == name {
				return cmd, true
			}
		}
	}
	return Command{}, false
}

// All returns the command set sorted by name, for help screens.
func All() []Command {
	out := make([]Command, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Parse splits a command line into its name and arguments.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
