package cli

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/dmitrijs2005/redline/internal/commands"
	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/game"
)

// Execute resolves one logged-in line. Informational screens render from a
// decayed read of the profile, help/clear/logout are handled locally, and
// everything else runs through the game service and renders its outcome.
func (a *App) Execute(ctx context.Context, line string) error {

	name, args := commands.Parse(line)
	cmd, ok := commands.Lookup(name)
	if !ok {
		printlnFn("Unknown command:", name, "(try 'help')")
		return common.ErrUnknownCommand
	}

	switch cmd.Name {
	case "help":
		renderHelp(args)
		return nil
	case "clear":
		clearScreen()
		return nil
	case "logout":
		printlnFn("Connection to the grid closed.")
		a.dropSession(ctx)
		return nil
	case "status", "mission":
		profile, err := a.game.Status(ctx, a.token)
		if err != nil {
			return a.reportGameError(ctx, cmd.Name, err)
		}
		if cmd.Name == "status" {
			renderStatus(profile)
		} else {
			renderMissions(profile)
		}
		return nil
	}

	res, err := a.game.Execute(ctx, a.token, line)
	if err != nil {
		return a.reportGameError(ctx, cmd.Name, err)
	}

	renderOutcome(res.Outcome)
	printEvents(res.Events)
	renderVitals(res.Profile)
	if res.WorldEvent != nil {
		a.resolveWorldEvent(ctx, *res.WorldEvent)
	}

	return nil
}

// reportGameError prints the failure and drops the session when it cannot
// continue: expired or rejected tokens, and a profile record too damaged
// to load.
func (a *App) reportGameError(ctx context.Context, command string, err error) error {
	switch {
	case errors.Is(err, common.ErrSessionExpired):
		printlnFn("Session expired. Log in again.")
		a.dropSession(ctx)
	case errors.Is(err, common.ErrInvalidToken):
		printlnFn("Session rejected. Log in again.")
		a.dropSession(ctx)
	case errors.Is(err, common.ErrCorruptRecord):
		a.logger.Error(ctx, "profile record corrupt", "command", command, "error", err)
		printlnFn("Your stored profile is damaged and cannot be loaded. Session closed.")
		a.dropSession(ctx)
	default:
		a.logger.Error(ctx, "command failed", "command", command, "error", err)
		printlnFn("Operation failed: " + err.Error())
	}
	return err
}

// resolveWorldEvent presents an event and loops until the user picks an
// affordable choice or input runs out.
func (a *App) resolveWorldEvent(ctx context.Context, ev game.WorldEvent) {
	renderWorldEvent(ev)

	for {
		answer, err := getSimpleText(a.reader, "Your move (number)", os.Stdout)
		if err != nil {
			return
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(ev.Choices) {
			printlnFn("Pick a number between 1 and", len(ev.Choices))
			continue
		}

		profile, err := a.game.ResolveEvent(ctx, a.token, ev, choice-1)
		if err != nil {
			if errors.Is(err, common.ErrInsufficientCredits) {
				printlnFn("Not enough credits for that. Pick something else.")
				continue
			}
			printlnFn("Operation failed: " + err.Error())
			return
		}

		renderResolution(ev.Choices[choice-1], profile)
		return
	}
}
