package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a handle and password (twice) and creates the
// account. Password buffers are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a handle", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return errors.New("passwords do not match")
	}

	if _, err := a.auth.Register(ctx, username, string(password)); err != nil {
		printlnFn(authMessage(err))
		return err
	}

	a.logger.Info(ctx, "account registered", "username", username)
	printlnFn("Identity forged. You can now log in.")
	return nil
}

// Login prompts for credentials, authenticates, and on success switches
// the terminal into game mode.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Handle", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	res, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.logger.Warn(ctx, "login refused", "username", username, "error", err)
		printlnFn(authMessage(err))
		return err
	}

	a.username = username
	a.token = res.Session.Token
	a.logger.Info(ctx, "login ok", "username", username, "login_count", res.Profile.LoginCount)

	renderWelcome(res.Profile)
	printEvents(res.Events)
	return nil
}

// authMessage maps service errors to the lines shown at the access gate.
func authMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidUsername):
		return "Handles are 3-20 characters: letters, digits, underscore."
	case errors.Is(err, common.ErrWeakPassword):
		return "Too weak. Passwords need 8+ chars with upper, lower, digit, and a special character."
	case errors.Is(err, common.ErrUsernameTaken):
		return "That handle is already taken."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Access denied."
	case errors.Is(err, common.ErrAccountLocked):
		return "Account locked after too many failed attempts. Come back later."
	default:
		return "Operation failed: " + err.Error()
	}
}
