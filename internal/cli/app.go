// Package cli implements the interactive terminal client: a REPL that
// routes commands to per-screen controllers, gated by the session route
// guard.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"cvterm/internal/api"
	"cvterm/internal/config"
	"cvterm/internal/logging"
	"cvterm/internal/models"
	"cvterm/internal/session"
	"cvterm/internal/storage"

	_ "modernc.org/sqlite"
)

// SessionStore is the session surface the screens depend on. The concrete
// implementation is session.Manager; tests substitute a fake.
type SessionStore interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, user models.UserSummary, token string) error
	UpdateUser(ctx context.Context, user models.UserSummary, token string) error
	Logout(ctx context.Context) error
	Snapshot() session.Session
}

// App wires the config, API gateway, session store and terminal I/O
// together. Each screen is a method on App.
type App struct {
	config  *config.Config
	api     api.Client
	session SessionStore
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database, restores any persisted session and
// builds the application.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	manager := session.NewManager(db)
	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, manager)

	return &App{
		config:  cfg,
		api:     client,
		session: manager,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the session and enters the REPL. The restore happens before
// the first prompt, so the route guard never sees a loading session during
// normal operation.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}
	if s := a.session.Snapshot(); s.LoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", s.User.Name)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// status renders the prompt suffix: the logged-in user's name, if any.
func (a *App) status() string {
	if s := a.session.Snapshot(); s.LoggedIn() {
		return fmt.Sprintf("(%s)", s.User.Name)
	}
	return ""
}

func (a *App) loggedIn() bool {
	return a.session.Snapshot().LoggedIn()
}

// requireAuth applies the route guard to a protected screen. On Wait the
// screen is not entered and no redirect happens; on Redirect the user is
// sent to the login screen. Returns true only when the screen may run.
func (a *App) requireAuth(ctx context.Context) bool {
	switch Decide(a.session.Snapshot()) {
	case DecisionWait:
		fmt.Fprintln(a.out, "Session is still loading, try again in a moment.")
		return false
	case DecisionRedirect:
		fmt.Fprintln(a.out, "You need to be logged in for that.")
		_ = a.Login(ctx)
		return false
	}
	return true
}

// reportError is the shared failure boundary for screen handlers: the
// error is logged and shown inline, and the REPL keeps running.
func (a *App) reportError(ctx context.Context, screen string, err error) {
	a.logger.Error(ctx, "screen failed", "screen", screen, "error", err)
	fmt.Fprintf(a.out, "Something went wrong: %v\n", err)
}
