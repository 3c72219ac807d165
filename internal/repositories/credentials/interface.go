// Package credentials persists account login material and lockout state.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/redline/internal/models"
)

// Repository describes the credential store operations used by the auth
// service. Implementations are backed by the local SQLite database.
type Repository interface {
	// Create inserts a fresh credential record.
	Create(ctx context.Context, cred *models.Credential) error

	// GetByUsername returns a record, or common.ErrNotFound when no
	// account with that name exists.
	GetByUsername(ctx context.Context, username string) (*models.Credential, error)

	// Update persists the mutable fields (hash, failed attempts, lock)
	// of an existing record.
	Update(ctx context.Context, cred *models.Credential) error
}
