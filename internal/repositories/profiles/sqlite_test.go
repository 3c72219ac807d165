package profiles

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE profiles (
  username            TEXT PRIMARY KEY,
  reputation          INTEGER NOT NULL DEFAULT 0,
  heat                REAL NOT NULL DEFAULT 0,
  credits             INTEGER NOT NULL DEFAULT 0,
  streak              INTEGER NOT NULL DEFAULT 0,
  login_count         INTEGER NOT NULL DEFAULT 0,
  last_login          INTEGER,
  last_heat_update    INTEGER NOT NULL,
  total_scans         INTEGER NOT NULL DEFAULT 0,
  successful_hacks    INTEGER NOT NULL DEFAULT 0,
  failed_hacks        INTEGER NOT NULL DEFAULT 0,
  files_decrypted     INTEGER NOT NULL DEFAULT 0,
  systems_compromised INTEGER NOT NULL DEFAULT 0,
  times_traced        INTEGER NOT NULL DEFAULT 0,
  created_at          INTEGER NOT NULL
);
CREATE TABLE profile_missions (
  username     TEXT NOT NULL,
  mission_id   TEXT NOT NULL,
  completed_at INTEGER NOT NULL,
  PRIMARY KEY (username, mission_id)
);
CREATE TABLE profile_achievements (
  username       TEXT NOT NULL,
  achievement_id TEXT NOT NULL,
  unlocked_at    INTEGER NOT NULL,
  PRIMARY KEY (username, achievement_id)
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateAndGet_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	p := models.NewProfile("neo", 1000, created)
	require.NoError(t, r.Create(ctx, p))

	got, err := r.GetByUsername(ctx, "neo")
	require.NoError(t, err)
	assert.Equal(t, "neo", got.Username)
	assert.EqualValues(t, 0, got.Reputation)
	assert.EqualValues(t, 1000, got.Credits)
	assert.Zero(t, got.Heat)
	assert.Nil(t, got.LastLogin)
	assert.Equal(t, created, got.LastHeatUpdate)
	assert.Equal(t, created, got.CreatedAt)
	assert.Empty(t, got.CompletedMissions)
	assert.Empty(t, got.UnlockedAchievements)
}

func TestGetByUsername_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSave_PersistsProgress(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	p := models.NewProfile("neo", 1000, created)
	require.NoError(t, r.Create(ctx, p))

	now := created.Add(10 * time.Minute)
	p.Reputation = 45
	p.Heat = 17.5
	p.Credits = 1450
	p.Streak = 3
	p.LoginCount = 2
	p.LastLogin = &now
	p.LastHeatUpdate = now
	p.TotalScans = 2
	p.SuccessfulHacks = 1
	p.CompletedMissions["INIT-001"] = true
	p.UnlockedAchievements["first_login"] = true
	p.UnlockedAchievements["first_scan"] = true
	require.NoError(t, r.Save(ctx, p, now))

	got, err := r.GetByUsername(ctx, "neo")
	require.NoError(t, err)
	assert.EqualValues(t, 45, got.Reputation)
	assert.InDelta(t, 17.5, got.Heat, 1e-9)
	assert.EqualValues(t, 1450, got.Credits)
	assert.Equal(t, 3, got.Streak)
	assert.Equal(t, 2, got.LoginCount)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, now, *got.LastLogin)
	assert.Equal(t, now, got.LastHeatUpdate)
	assert.Equal(t, 2, got.TotalScans)
	assert.Equal(t, 1, got.SuccessfulHacks)
	assert.Equal(t, map[string]bool{"INIT-001": true}, got.CompletedMissions)
	assert.Equal(t, map[string]bool{"first_login": true, "first_scan": true}, got.UnlockedAchievements)
}

func TestSave_KeepsOriginalUnlockTime(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	p := models.NewProfile("neo", 1000, created)
	require.NoError(t, r.Create(ctx, p))

	first := created.Add(5 * time.Minute)
	p.UnlockedAchievements["first_login"] = true
	require.NoError(t, r.Save(ctx, p, first))

	// saving again later must not move the unlock time
	require.NoError(t, r.Save(ctx, p, first.Add(time.Hour)))

	var unlockedAt int64
	err := db.QueryRow(`SELECT unlocked_at FROM profile_achievements WHERE username = ? AND achievement_id = ?`,
		"neo", "first_login").Scan(&unlockedAt)
	require.NoError(t, err)
	assert.Equal(t, first.Unix(), unlockedAt)
}

func TestSave_MissingRecord(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	p := models.NewProfile("ghost", 0, time.Now())
	err := r.Save(context.Background(), p, time.Now())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByUsername_CorruptRecord(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO profiles (username, reputation, credits, heat, last_heat_update, created_at)
	                   VALUES ('broken', -5, 0, 0, 0, 0)`)
	require.NoError(t, err)

	_, err = r.GetByUsername(ctx, "broken")
	require.ErrorIs(t, err, common.ErrCorruptRecord)
}
