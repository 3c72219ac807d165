package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/redline/internal/commands"
	"github.com/dmitrijs2005/redline/internal/common"
	"github.com/dmitrijs2005/redline/internal/config"
	"github.com/dmitrijs2005/redline/internal/dbx"
	"github.com/dmitrijs2005/redline/internal/game"
	"github.com/dmitrijs2005/redline/internal/models"
	"github.com/dmitrijs2005/redline/internal/randx"
	"github.com/dmitrijs2005/redline/internal/session"
	"github.com/dmitrijs2005/redline/internal/storage"
)

// CommandResult bundles everything a single executed command produced.
type CommandResult struct {
	Outcome game.Outcome
	Profile *models.Profile
	Events  []game.Event

	// WorldEvent is set when the command also triggered a random world
	// event that the terminal should present for resolution.
	WorldEvent *game.WorldEvent
}

type GameService struct {
	db         *sql.DB
	manager    storage.Manager
	sessions   *session.Manager
	engine     *game.Engine
	dispatcher *commands.Dispatcher
	rng        randx.Source

	eventChance float64

	now func() time.Time
}

func NewGameService(db *sql.DB, m storage.Manager, sessions *session.Manager, engine *game.Engine, dispatcher *commands.Dispatcher, rng randx.Source, cfg *config.Config) *GameService {
	return &GameService{
		db:          db,
		manager:     m,
		sessions:    sessions,
		engine:      engine,
		dispatcher:  dispatcher,
		rng:         rng,
		eventChance: cfg.EventChance,
		now:         time.Now,
	}
}

// Execute runs one command line against the caller's profile. Informational
// commands come back with a decayed view of the profile and no writes; game
// actions are applied, persisted, and may roll a world event.
func (s *GameService) Execute(ctx context.Context, token, line string) (*CommandResult, error) {

	sess, err := s.sessions.Verify(token)
	if err != nil {
		return nil, err
	}

	out, err := s.dispatcher.Dispatch(line)
	if err != nil {
		return nil, err
	}

	profile, err := s.manager.Profiles(s.db).GetByUsername(ctx, sess.Username)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if out.Kind == game.KindNone {
		return &CommandResult{Outcome: out, Profile: s.engine.DecayHeat(profile, now)}, nil
	}

	next, events := s.engine.Apply(profile, out, now)

	if err := s.saveProfile(ctx, next, now); err != nil {
		return nil, err
	}

	result := &CommandResult{Outcome: out, Profile: next, Events: events}

	if s.rng.Float64() < s.eventChance {
		ev := game.PickEvent(next, s.rng)
		result.WorldEvent = &ev
	}

	return result, nil
}

// ResolveEvent applies the chosen answer to a world event and persists the
// result.
func (s *GameService) ResolveEvent(ctx context.Context, token string, ev game.WorldEvent, choice int) (*models.Profile, error) {

	sess, err := s.sessions.Verify(token)
	if err != nil {
		return nil, err
	}

	if choice < 0 || choice >= len(ev.Choices) {
		return nil, fmt.Errorf("event %s has no choice %d", ev.ID, choice)
	}

	profile, err := s.manager.Profiles(s.db).GetByUsername(ctx, sess.Username)
	if err != nil {
		return nil, err
	}

	now := s.now()

	next, err := game.ResolveEvent(s.engine.DecayHeat(profile, now), ev.Choices[choice])
	if err != nil {
		return nil, err
	}

	if err := s.saveProfile(ctx, next, now); err != nil {
		return nil, err
	}

	return next, nil
}

// Status returns the caller's profile with heat decayed to the present
// moment. Nothing is written; the stored decay anchor is untouched. A
// display refresh is not worth failing over a transient store hiccup, so
// the read gets one retry before the error surfaces.
func (s *GameService) Status(ctx context.Context, token string) (*models.Profile, error) {

	sess, err := s.sessions.Verify(token)
	if err != nil {
		return nil, err
	}

	profile, err := s.manager.Profiles(s.db).GetByUsername(ctx, sess.Username)
	if errors.Is(err, common.ErrPersistence) {
		profile, err = s.manager.Profiles(s.db).GetByUsername(ctx, sess.Username)
	}
	if err != nil {
		return nil, err
	}

	return s.engine.DecayHeat(profile, s.now()), nil
}

func (s *GameService) saveProfile(ctx context.Context, p *models.Profile, now time.Time) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.manager.Profiles(tx).Save(ctx, p, now)
	})
}
