package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Create(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Match(ctx context.Context) error
	Playoff(ctx context.Context) error
	Refresh(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
}

// runREPL starts the read–eval–print loop for the champs CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - theme          — show or set the color theme
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - create         — run the two-step tournament creation flow
//	  - list           — list your tournaments
//	  - show [id]      — render the current (or a given) tournament
//	  - match          — report a group-stage match result
//	  - playoff        — report a playoff match result
//	  - refresh        — reload the current tournament from the server
//	  - theme          — show or set the color theme
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("champs %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: create, (l)ist, show, match, playoff, refresh, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, theme, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "create":
			_ = a.Create(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "match":
			_ = a.Match(ctx)

		case "playoff":
			_ = a.Playoff(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
