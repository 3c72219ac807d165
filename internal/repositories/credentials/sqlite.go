package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/dbx"
	"github.com/dmitrijs2005/redline/internal/models"
)

// SQLiteRepository reads and writes the credentials table. The handle may be
// a *sql.DB or an open transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, cred *models.Credential) error {
	query := `INSERT INTO credentials (username, password_hash, failed_attempts, locked_until, created_at)
	          VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		cred.Username, cred.PasswordHash, cred.FailedAttempts,
		unixOrNil(cred.LockedUntil), cred.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("%w: insert credential: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	query := `SELECT username, password_hash, failed_attempts, locked_until, created_at
	          FROM credentials WHERE username = ?`

	var (
		cred        models.Credential
		lockedUntil sql.NullInt64
		createdAt   int64
	)
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&cred.Username, &cred.PasswordHash, &cred.FailedAttempts, &lockedUntil, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: select credential: %v", common.ErrPersistence, err)
	}

	if cred.PasswordHash == "" || cred.FailedAttempts < 0 {
		return nil, fmt.Errorf("%w: credential %q", common.ErrCorruptRecord, username)
	}

	if lockedUntil.Valid {
		t := time.Unix(lockedUntil.Int64, 0).UTC()
		cred.LockedUntil = &t
	}
	cred.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &cred, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, cred *models.Credential) error {
	query := `UPDATE credentials SET password_hash = ?, failed_attempts = ?, locked_until = ?
	          WHERE username = ?`

	res, err := r.db.ExecContext(ctx, query,
		cred.PasswordHash, cred.FailedAttempts, unixOrNil(cred.LockedUntil), cred.Username)
	if err != nil {
		return fmt.Errorf("%w: update credential: %v", common.ErrPersistence, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update credential: %v", common.ErrPersistence, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// unixOrNil maps an optional timestamp to a NULLable column value.
func unixOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}
