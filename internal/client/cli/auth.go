package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dpolyakov/planmate/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Register prompts for a username, email and password and attempts to create
// a new account through the session manager. On success the session is
// already persisted and the user logged in.
//
// The password byte slice is wiped before returning. Any I/O or service
// error is logged and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, username, email, string(password)); err != nil {
		log.Printf("Registration failed: %v", err)
		return err
	}

	log.Printf("Registered and logged in as %s", a.session.CurrentUser().Username)
	return nil
}

// Login prompts for credentials and tries to authenticate. On failure the
// previous session state (if any) is left intact.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login failed: %v", err)
		return err
	}

	log.Printf("Logged in as %s", a.session.CurrentUser().Username)
	return nil
}

// Logout clears the persisted session and drops the opened project.
// The server is not contacted.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("Logout failed: %v", err)
		return err
	}
	a.current = nil
	fmt.Println("Logged out")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", user.Username, user.Email)
	return nil
}

// Ping probes the configured server.
func (a *App) Ping(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		log.Printf("Server unreachable: %v", err)
		return err
	}
	fmt.Println("Server is up")
	return nil
}
