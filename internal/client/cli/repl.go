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
	AdminLogin(ctx context.Context) error
	Profile(ctx context.Context) error
	Summary(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	AddAnimal(ctx context.Context) error
	Book(ctx context.Context) error
	Calendar(ctx context.Context, month string) error
	Day(ctx context.Context, date string) error
	Pay(ctx context.Context) error
	Admin(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Meet-A-Vet CLI.
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
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate as a farmer or vet
//	  - adminlogin      — authenticate as an administrator
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - profile         — show profile and registered animals
//	  - summary         — show herd and appointment totals
//	  - update          — update profile details
//	  - addanimal       — register an animal
//	  - book            — book an appointment
//	  - cal [YYYY-MM]   — show the appointment calendar for a month
//	  - day YYYY-MM-DD  — show appointments on a single day
//	  - pay             — pay for an appointment via M-Pesa
//	  - admin ...       — administrator dashboard (admin sessions only)
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mav> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, summary, update, addanimal, book, cal, day, pay, admin, logout, exit")
			} else {
				printlnFn("Available commands: register, login, adminlogin, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "adminlogin":
			_ = a.AdminLogin(ctx)

		case "p", "profile":
			_ = a.Profile(ctx)

		case "s", "summary":
			_ = a.Summary(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "addanimal":
			_ = a.AddAnimal(ctx)

		case "b", "book":
			_ = a.Book(ctx)

		case "cal", "calendar":
			month := ""
			if len(parts) > 1 {
				month = parts[1]
			}
			_ = a.Calendar(ctx, month)

		case "day":
			date := ""
			if len(parts) > 1 {
				date = parts[1]
			}
			_ = a.Day(ctx, date)

		case "pay":
			_ = a.Pay(ctx)

		case "admin":
			_ = a.Admin(ctx, parts[1:])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
