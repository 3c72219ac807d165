// Package models defines the persistent records of the engine: account
// credentials and agent game profiles.
package models

import "time"

// Credential is one account's stored login material and lockout state.
// Only the auth service mutates these fields.
type Credential struct {
	// Username is the unique account handle (3-20 chars, [A-Za-z0-9_]).
	Username string

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string

	// FailedAttempts counts consecutive failed logins since the last
	// success or lock expiry.
	FailedAttempts int

	// LockedUntil is set when FailedAttempts reaches the lockout
	// threshold; nil while the account is not locked.
	LockedUntil *time.Time

	CreatedAt time.Time
}

// Locked reports whether the account is locked at the given instant.
func (c *Credential) Locked(now time.Time) bool {
	return c.LockedUntil != nil && now.Before(*c.LockedUntil)
}

// LockExpired reports whether a past lock has run out by the given instant.
func (c *Credential) LockExpired(now time.Time) bool {
	return c.LockedUntil != nil && !now.Before(*c.LockedUntil)
}
