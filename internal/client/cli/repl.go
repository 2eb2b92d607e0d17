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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Verify(ctx context.Context) error
	Resend(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	UpdateAddress(ctx context.Context) error
	ListEvents(ctx context.Context) error
	NewEvent(ctx context.Context) error
	Registrations(ctx context.Context, eventID string) error
	Approve(ctx context.Context, eventID, regID string) error
	Reject(ctx context.Context, eventID, regID string) error
}

// runREPL starts a read–eval–print loop for the VolunteerHub CLI.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are printed and the loop continues;
// the REPL stays resilient and the user stays on the current view.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vhub (%s) > ", statusFn()))
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

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, address, events, newevent, regs <event>, approve <event> <reg>, reject <event> <reg>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, verify, resend, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "verify":
			err = a.Verify(ctx)

		case "resend":
			err = a.Resend(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "profile":
			err = a.UpdateProfile(ctx)

		case "address":
			err = a.UpdateAddress(ctx)

		case "events":
			err = a.ListEvents(ctx)

		case "newevent":
			err = a.NewEvent(ctx)

		case "regs":
			if len(args) != 1 {
				printlnFn("Usage: regs <event-id>")
				continue
			}
			err = a.Registrations(ctx, args[0])

		case "approve", "reject":
			if len(args) != 2 {
				printlnFn(fmt.Sprintf("Usage: %s <event-id> <registration-id>", cmd))
				continue
			}
			if cmd == "approve" {
				err = a.Approve(ctx, args[0], args[1])
			} else {
				err = a.Reject(ctx, args[0], args[1])
			}

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
