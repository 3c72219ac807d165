package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output. In tests,
// replace them with stubs.
var printlnFn = fmt.Println
var printfFn = fmt.Printf

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	prompt() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Execute(ctx context.Context, line string) error
}

// runREPL drives the terminal loop.
//
// While no one is logged in, only the access-gate commands are accepted:
//
//	register      - create an account
//	login         - authenticate
//	help          - list the gate commands
//	exit | quit   - leave the program
//
// Once logged in, every line is handed to Execute, which resolves it
// through the game command registry; logout (and its aliases, including
// exit and quit) drops the session and returns to the gate. The loop ends
// on scanner EOF or exit/quit at the gate.
//
// Errors returned by handlers are ignored here; handlers print their own
// messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printfFn("%s", a.prompt())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if a.isLoggedIn() {
			_ = a.Execute(ctx, line)
			continue
		}

		switch name := strings.Fields(line)[0]; name {
		case "help", "?":
			printlnFn("Available commands: register, login, exit")
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "exit", "quit":
			printlnFn("Connection closed.")
			return
		default:
			printlnFn("Unknown command:", name)
		}
	}
}
