package profiles

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

// SQLiteRepository reads and writes the profiles table and its mission and
// achievement link tables. The handle may be a *sql.DB or an open
// transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *models.Profile) error {
	query := `INSERT INTO profiles (username, reputation, heat, credits, streak, login_count,
	            last_login, last_heat_update, total_scans, successful_hacks, failed_hacks,
	            files_decrypted, systems_compromised, times_traced, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.Username, p.Reputation, p.Heat, p.Credits, p.Streak, p.LoginCount,
		unixOrNil(p.LastLogin), p.LastHeatUpdate.Unix(),
		p.TotalScans, p.SuccessfulHacks, p.FailedHacks,
		p.FilesDecrypted, p.SystemsCompromised, p.TimesTraced,
		p.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("%w: insert profile: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `SELECT username, reputation, heat, credits, streak, login_count,
	            last_login, last_heat_update, total_scans, successful_hacks, failed_hacks,
	            files_decrypted, systems_compromised, times_traced, created_at
	          FROM profiles WHERE username = ?`

	var (
		p              models.Profile
		lastLogin      sql.NullInt64
		lastHeatUpdate int64
		createdAt      int64
	)
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&p.Username, &p.Reputation, &p.Heat, &p.Credits, &p.Streak, &p.LoginCount,
		&lastLogin, &lastHeatUpdate,
		&p.TotalScans, &p.SuccessfulHacks, &p.FailedHacks,
		&p.FilesDecrypted, &p.SystemsCompromised, &p.TimesTraced,
		&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: select profile: %v", common.ErrPersistence, err)
	}

	if p.Reputation < 0 || p.Credits < 0 || p.Heat < 0 || p.Heat > 100 || p.Streak < 0 {
		return nil, fmt.Errorf("%w: profile %q", common.ErrCorruptRecord, username)
	}

	if lastLogin.Valid {
		t := time.Unix(lastLogin.Int64, 0).UTC()
		p.LastLogin = &t
	}
	p.LastHeatUpdate = time.Unix(lastHeatUpdate, 0).UTC()
	p.CreatedAt = time.Unix(createdAt, 0).UTC()

	p.CompletedMissions, err = r.loadIDSet(ctx,
		`SELECT mission_id FROM profile_missions WHERE username = ?`, username)
	if err != nil {
		return nil, err
	}
	p.UnlockedAchievements, err = r.loadIDSet(ctx,
		`SELECT achievement_id FROM profile_achievements WHERE username = ?`, username)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, p *models.Profile, now time.Time) error {
	query := `UPDATE profiles SET reputation = ?, heat = ?, credits = ?, streak = ?,
	            login_count = ?, last_login = ?, last_heat_update = ?,
	            total_scans = ?, successful_hacks = ?, failed_hacks = ?,
	            files_decrypted = ?, systems_compromised = ?, times_traced = ?
	          WHERE username = ?`

	res, err := r.db.ExecContext(ctx, query,
		p.Reputation, p.Heat, p.Credits, p.Streak,
		p.LoginCount, unixOrNil(p.LastLogin), p.LastHeatUpdate.Unix(),
		p.TotalScans, p.SuccessfulHacks, p.FailedHacks,
		p.FilesDecrypted, p.SystemsCompromised, p.TimesTraced,
		p.Username)
	if err != nil {
		return fmt.Errorf("%w: update profile: %v", common.ErrPersistence, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update profile: %v", common.ErrPersistence, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	// The link tables only ever grow. INSERT OR IGNORE keeps the original
	// completion time when an ID is saved again.
	for id := range p.CompletedMissions {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO profile_missions (username, mission_id, completed_at) VALUES (?, ?, ?)`,
			p.Username, id, now.Unix())
		if err != nil {
			return fmt.Errorf("%w: record mission: %v", common.ErrPersistence, err)
		}
	}
	for id := range p.UnlockedAchievements {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO profile_achievements (username, achievement_id, unlocked_at) VALUES (?, ?, ?)`,
			p.Username, id, now.Unix())
		if err != nil {
			return fmt.Errorf("%w: record achievement: %v", common.ErrPersistence, err)
		}
	}

	return nil
}

func (r *SQLiteRepository) loadIDSet(ctx context.Context, query, username string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("%w: select unlocks: %v", common.ErrPersistence, err)
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scan unlock: %v", common.ErrPersistence, err)
		}
		set[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: select unlocks: %v", common.ErrPersistence, err)
	}
	return set, nil
}

// unixOrNil maps an optional timestamp to a NULLable column value.
func unixOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}
