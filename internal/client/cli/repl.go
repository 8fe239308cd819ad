package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Avatar(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Like(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: whoami, profile, edit, avatar, (l)ist, add, like <n|id>, delete <n|id>, logout, help, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// Handler errors are not printed here; handlers report to the user
// themselves. Commands that need a session are refused while signed out, and
// register and login are refused while signed in.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("around%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needsSession(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}
		if needsNoSession(cmd) && a.isLoggedIn() {
			printlnFn("Already signed in; log out first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "avatar":
			_ = a.Avatar(ctx)

		case "l", "list", "cards":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "like", "delete":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <n|id>", cmd))
				continue
			}
			if cmd == "like" {
				_ = a.Like(ctx, args[0])
			} else {
				_ = a.Delete(ctx, args[0])
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func needsSession(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "profile", "edit", "avatar", "l", "list", "cards", "add", "like", "delete":
		return true
	default:
		return false
	}
}

func needsNoSession(cmd string) bool {
	return cmd == "register" || cmd == "login"
}
