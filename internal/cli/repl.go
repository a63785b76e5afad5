package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// replOut is a test seam for REPL output. In tests, replace it with a
// buffer.
var replOut io.Writer = os.Stdout

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a stub.
type execIface interface {
	loggedIn() bool
	Home(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context, term string) error
	MyCV(ctx context.Context) error
	CreateCV(ctx context.Context) error
	ViewCV(ctx context.Context, id string) error
	Profile(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. The loop exits on scanner EOF, context
// cancellation, or "exit"/"quit".
//
// Commands:
//
//	Public:
//	  - help            — show available commands
//	  - home            — landing screen
//	  - register        — create an account
//	  - login           — authenticate
//	  - browse [term]   — list visible CVs, optionally filtered
//	  - exit | quit     — leave the program
//
//	Protected (route guard redirects to login when logged out):
//	  - mycv            — manage your own CV
//	  - create          — create your CV
//	  - view <id>       — view a CV and its comments
//	  - profile         — view or edit your account
//	  - logout          — log out and return to the landing screen
//
// Handler errors are already reported by the handlers; the loop stays up
// regardless.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	fmt.Fprintln(replOut, "cvterm — CV platform client (type 'help' for commands)")

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(replOut, "cvterm %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.loggedIn() {
				fmt.Fprintln(replOut, "Available commands: home, browse [term], mycv, create, view <id>, profile, logout, exit")
			} else {
				fmt.Fprintln(replOut, "Available commands: home, register, login, browse [term], exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "browse":
			_ = a.Browse(ctx, strings.Join(args, " "))

		case "mycv":
			_ = a.MyCV(ctx)

		case "create":
			_ = a.CreateCV(ctx)

		case "view":
			if len(args) == 0 {
				fmt.Fprintln(replOut, "Usage: view <id>")
				continue
			}
			_ = a.ViewCV(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "exit", "quit":
			fmt.Fprintln(replOut, "Bye!")
			return

		default:
			fmt.Fprintln(replOut, "Unknown command:", cmd)
		}
	}
}

// splitCommand splits a subshell command line into fields, always returning
// at least one element so callers can index parts[0].
func splitCommand(line string) []string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return []string{""}
	}
	return parts
}
