// Package common defines the sentinel errors shared across redline layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrPersistence   = errors.New("persistence failure")
	ErrCorruptRecord = errors.New("corrupt record")

	// Registration policy errors.
	ErrInvalidUsername = errors.New("invalid username")
	ErrWeakPassword    = errors.New("weak password")
	ErrUsernameTaken   = errors.New("username taken")

	// Login errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")

	// Session errors (invalid, expired or foreign token).
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")

	// Command errors.
	ErrUnknownCommand      = errors.New("unknown command")
	ErrInsufficientCredits = errors.New("insufficient credits")
)
