// Package storage wires the SQLite database together with its repositories
// and schema migrations (via goose).
package storage

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/redline/internal/dbx"
	"github.com/dmitrijs2005/redline/internal/repositories/credentials"
	"github.com/dmitrijs2005/redline/internal/repositories/profiles"
)

// Manager vends repository implementations bound to a DBTX. Services pass
// the shared *sql.DB for plain reads and an open transaction when several
// writes must land together.
type Manager interface {
	RunMigrations(context.Context, *sql.DB) error
	Credentials(db dbx.DBTX) credentials.Repository
	Profiles(db dbx.DBTX) profiles.Repository
}
