package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/redline/internal/commands"
	"github.com/dmitrijs2005/redline/internal/config"
	"github.com/dmitrijs2005/redline/internal/game"
	"github.com/dmitrijs2005/redline/internal/logging"
	"github.com/dmitrijs2005/redline/internal/randx"
	"github.com/dmitrijs2005/redline/internal/services"
	"github.com/dmitrijs2005/redline/internal/session"
	"github.com/dmitrijs2005/redline/internal/storage"
)

// App owns the terminal's collaborators and the current login state.
type App struct {
	config *config.Config
	logger logging.Logger

	db   *sql.DB
	auth *services.AuthService
	game *services.GameService

	reader *bufio.Reader

	username string
	token    string
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "initializing database", "dsn", cfg.DatabaseDSN, "error", err)
		return nil, err
	}

	rng, err := randx.New()
	if err != nil {
		db.Close()
		return nil, err
	}

	manager := storage.NewSQLiteManager()
	sessions := session.NewManager([]byte(cfg.SessionSecret), cfg.SessionTimeout)
	engine := game.NewEngine(cfg.HeatDecayRate)
	dispatcher := commands.NewDispatcher(rng)

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		auth:   services.NewAuthService(db, manager, sessions, engine, cfg),
		game:   services.NewGameService(db, manager, sessions, engine, dispatcher, rng, cfg),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run prints the banner and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printBanner()
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) prompt() string {
	if a.username != "" {
		return a.username + "@redline> "
	}
	return "redline> "
}

func (a *App) dropSession(ctx context.Context) {
	if a.username != "" {
		a.logger.Info(ctx, "session closed", "username", a.username)
	}
	a.username = ""
	a.token = ""
}
