package cli

import (
	"context"

	"github.com/champsapp/champs-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and attempts to
// create an account. On success the user is logged in right away (the
// backend returns a session token with the new account).
//
// Expected failures — taken email, weak input, unreachable server — are
// shown as notifications; the password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, username, email, string(password)); err != nil {
		a.notifyError(err)
		return err
	}

	a.notify("Welcome, " + a.session.User().Username + "!")
	a.afterLogin(ctx)
	return nil
}

// Login prompts for credentials and authenticates. A wrong password or a
// dead backend is an expected outcome: it is reported and the REPL goes on.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.notifyError(err)
		return err
	}

	a.notify("Logged in as " + a.session.User().Username)
	a.afterLogin(ctx)
	return nil
}

// afterLogin brings the tournament cache up for the fresh session.
func (a *App) afterLogin(ctx context.Context) {
	if err := a.cache.Initialize(ctx); err != nil {
		a.notifyError(err)
	}
}

// Logout clears the session and the current tournament pointer, returning
// the user to the logged-out prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.notifyError(err)
		return err
	}
	a.notify("Logged out")
	return nil
}
