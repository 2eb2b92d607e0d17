// Package cli implements the interactive terminal client for VolunteerHub.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/api"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/config"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/credentials"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/events"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/session"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/httpx"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	store   *session.Store
	manager *session.Manager
	events  *events.Service
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	slot := credentials.NewSQLiteRepository(db)
	store := session.NewStore(slot)

	fetch := httpx.NewClient(
		httpx.WithAttempts(cfg.RetryAttempts),
		httpx.WithDelay(cfg.RetryDelay),
	)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, fetch)

	return &App{
		config:  cfg,
		store:   store,
		manager: session.NewManager(store, apiClient, log),
		events:  events.NewService(apiClient, store, log),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run bootstraps the session from the stored credential and drops into the
// command loop.
func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "starting client", "api", a.config.APIBaseURL, "db", a.config.DatabasePath)
	a.manager.Bootstrap(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Authenticated
}

// status renders the prompt suffix: the signed-in email, if any.
func (a *App) status() string {
	st := a.store.State()
	if st.User != nil && st.User.Email != "" {
		return st.User.Email
	}
	return "anonymous"
}
