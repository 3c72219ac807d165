// Package cli provides the interactive redline terminal.
//
// It wires configuration, the local SQLite store, the auth and game
// services, and a REPL with two modes. Before login the terminal accepts
// register, login, help, and exit; after login every line is resolved by
// the command dispatcher, applied to the agent profile, persisted, and
// rendered. Random world events interrupt the loop until the user picks
// an answer.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and Execute for details.
package cli
