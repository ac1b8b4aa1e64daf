package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Ping(ctx context.Context) error
	Projects(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	NewProject(ctx context.Context) error
	RemoveProject(ctx context.Context, args []string) error
	NewTask(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
	RemoveTask(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the planmate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command availability follows authentication state, the CLI equivalent of
// the web client's route guards: before login only register/login/ping are
// offered; afterwards the project and task commands.
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pm %s > ", statusFn()))
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
				printlnFn("Available commands: projects, open <id>, newproject, rmproject <id>, newtask, toggle <taskId>, rmtask <taskId>, whoami, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "projects", "l", "list":
			_ = a.Projects(ctx)

		case "open":
			_ = a.Open(ctx, args)

		case "newproject":
			_ = a.NewProject(ctx)

		case "rmproject":
			_ = a.RemoveProject(ctx, args)

		case "newtask":
			_ = a.NewTask(ctx)

		case "toggle":
			_ = a.Toggle(ctx, args)

		case "rmtask":
			_ = a.RemoveTask(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
