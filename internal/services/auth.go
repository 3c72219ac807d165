package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/config"
	"github.com/dmitrijs2005/redline/internal/cryptox"
	"github.com/dmitrijs2005/redline/internal/dbx"
	"github.com/dmitrijs2005/redline/internal/game"
	"github.com/dmitrijs2005/redline/internal/models"
	"github.com/dmitrijs2005/redline/internal/session"
	"github.com/dmitrijs2005/redline/internal/storage"
)

const minPasswordLength = 8

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// LoginResult is what a successful login hands back to the terminal.
type LoginResult struct {
	Session *session.Session
	Profile *models.Profile
	Events  []game.Event
}

type AuthService struct {
	db       *sql.DB
	manager  storage.Manager
	sessions *session.Manager
	engine   *game.Engine

	bcryptCost       int
	maxLoginAttempts int
	lockoutDuration  time.Duration
	startingCredits  int64

	now func() time.Time
}

func NewAuthService(db *sql.DB, m storage.Manager, sessions *session.Manager, engine *game.Engine, cfg *config.Config) *AuthService {
	return &AuthService{
		db:               db,
		manager:          m,
		sessions:         sessions,
		engine:           engine,
		bcryptCost:       cfg.BcryptCost,
		maxLoginAttempts: cfg.MaxLoginAttempts,
		lockoutDuration:  cfg.LockoutDuration,
		startingCredits:  cfg.StartingCredits,
		now:              time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.Credential, error) {

	if !usernamePattern.MatchString(username) {
		return nil, common.ErrInvalidUsername
	}

	if err := checkPassword(password); err != nil {
		return nil, err
	}

	_, err := s.manager.Credentials(s.db).GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrUsernameTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cred := &models.Credential{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	profile := models.NewProfile(username, s.startingCredits, now)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.manager.Credentials(tx).Create(ctx, cred); err != nil {
			return err
		}
		return s.manager.Profiles(tx).Create(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	return cred, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {

	now := s.now()
	repo := s.manager.Credentials(s.db)

	cred, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	// attempts against a locked account do not advance the counter
	if cred.Locked(now) {
		return nil, common.ErrAccountLocked
	}

	if cred.LockExpired(now) {
		cred.LockedUntil = nil
		cred.FailedAttempts = 0
	}

	ok, err := cryptox.VerifyPassword(cred.PasswordHash, password)
	if err != nil {
		return nil, err
	}

	if !ok {
		cred.FailedAttempts++
		locked := cred.FailedAttempts >= s.maxLoginAttempts
		if locked {
			until := now.Add(s.lockoutDuration)
			cred.LockedUntil = &until
		}
		if err := repo.Update(ctx, cred); err != nil {
			return nil, err
		}
		if locked {
			return nil, common.ErrAccountLocked
		}
		return nil, common.ErrInvalidCredentials
	}

	cred.FailedAttempts = 0
	cred.LockedUntil = nil

	profile, err := s.manager.Profiles(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	profile, events := s.engine.RecordLogin(profile, now)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.manager.Credentials(tx).Update(ctx, cred); err != nil {
			return err
		}
		return s.manager.Profiles(tx).Save(ctx, profile, now)
	})
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Issue(username, now)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Session: sess, Profile: profile, Events: events}, nil
}

// checkPassword enforces the password policy: at least eight characters
// with an uppercase letter, a lowercase letter, a digit and a special
// character. Whitespace does not count as special.
func checkPassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: shorter than %d characters", common.ErrWeakPassword, minPasswordLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			special = true
		}
	}

	switch {
	case !upper:
		return fmt.Errorf("%w: no uppercase letter", common.ErrWeakPassword)
	case !lower:
		return fmt.Errorf("%w: no lowercase letter", common.ErrWeakPassword)
	case !digit:
		return fmt.Errorf("%w: no digit", common.ErrWeakPassword)
	case !special:
		return fmt.Errorf("%w: no special character", common.ErrWeakPassword)
	}

	return nil
}
