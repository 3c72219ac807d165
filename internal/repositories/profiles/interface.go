// Package profiles persists agent progression state.
package profiles

import (
	"context"
	"time"

	"github.com/dmitrijs2005/redline/internal/models"
)

// Repository describes the profile store operations used by the game
// service. Implementations are backed by the local SQLite database.
type Repository interface {
	// Create inserts the empty profile that accompanies a fresh account.
	Create(ctx context.Context, p *models.Profile) error

	// GetByUsername returns a profile with its mission and achievement
	// sets loaded, or common.ErrNotFound when no profile exists.
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)

	// Save writes the full profile back. Newly completed missions and
	// newly unlocked achievements are recorded with now as their
	// completion time; rows already present keep their original one.
	Save(ctx context.Context, p *models.Profile, now time.Time) error
}
