package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a recording stub.
type execIface interface {
	Authorize(ctx context.Context) error
	SelectFiles(ctx context.Context, paths []string) error
	Files(ctx context.Context) error
	Upload(ctx context.Context) error
	Status(ctx context.Context) error
	Disconnect(ctx context.Context) error
	SignIn(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
}

const helpText = "Available commands: authorize, select <paths...>, files, upload, status, disconnect, signin [token], whoami, exit"

// runREPL reads one command per line from scanner and dispatches it to a.
// It returns on EOF, on "exit"/"quit", or once ctx is cancelled. Handler
// errors are ignored here; handlers report to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("drive %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "authorize", "auth":
			_ = a.Authorize(ctx)

		case "select":
			_ = a.SelectFiles(ctx, args)

		case "files", "ls":
			_ = a.Files(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "status":
			_ = a.Status(ctx)

		case "disconnect":
			_ = a.Disconnect(ctx)

		case "signin":
			_ = a.SignIn(ctx, args)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
