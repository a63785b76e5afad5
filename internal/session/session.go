// Package session is the single source of truth for "who is logged in".
// It keeps the authenticated identity and its bearer token in memory,
// writes every mutation through to the local store, and restores the pair
// once at startup.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cvterm/internal/dbx"
	"cvterm/internal/models"
	"cvterm/internal/storage"
)

// Persisted store keys. The token is opaque; the user is stored as JSON.
const (
	keyUser  = "user"
	keyToken = "token"
)

// Session is a point-in-time view of the authentication state. User and
// Token are set and cleared together; Loading is true only until the
// one-time restore has read the local store.
type Session struct {
	User    *models.UserSummary
	Token   string
	Loading bool
}

// LoggedIn reports whether the session carries an identity.
func (s Session) LoggedIn() bool {
	return s.User != nil && s.Token != ""
}

// Manager owns the Session for the lifetime of the process. All mutations
// go through Login, UpdateUser and Logout, each of which writes through to
// the local store. Manager is safe for concurrent readers.
type Manager struct {
	db *sql.DB

	mu      sync.RWMutex
	user    *models.UserSummary
	token   string
	loading bool

	restoreOnce sync.Once

	// now is a test seam for the token expiry check.
	now func() time.Time
}

// NewManager returns a Manager in the loading state, backed by db.
// Call Restore before reading the session.
func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db, loading: true, now: time.Now}
}

func (m *Manager) repo() storage.Repository {
	return storage.NewSQLiteRepository(m.db)
}

// Restore populates the session from the local store. It runs its body at
// most once per process; later calls are no-ops. A missing or malformed
// pair degrades silently to a logged-out session. In every case Loading is
// false afterwards.
func (m *Manager) Restore(ctx context.Context) error {
	var err error
	m.restoreOnce.Do(func() {
		err = m.restore(ctx)
	})
	return err
}

func (m *Manager) restore(ctx context.Context) error {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	r := m.repo()

	rawUser, err := r.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	rawToken, err := r.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if len(rawUser) == 0 || len(rawToken) == 0 {
		return nil
	}

	var user models.UserSummary
	if err := json.Unmarshal(rawUser, &user); err != nil {
		// Malformed persisted data means no session, not a failure.
		return nil
	}

	token := string(rawToken)
	if tokenExpired(token, m.now()) {
		return nil
	}

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.mu.Unlock()
	return nil
}

// tokenExpired parses the token as a JWT without verifying its signature
// and reports whether its expiry has passed. Tokens that are not JWTs, or
// JWTs without an exp claim, are treated as live: the token is opaque to
// the client and the server remains the authority.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Login stores the identity and token as a unit, in memory and in the
// local store. Callers supply the complete pair; there is no merging.
func (m *Manager) Login(ctx context.Context, user models.UserSummary, token string) error {
	return m.replace(ctx, user, token)
}

// UpdateUser replaces the identity and token after a profile update. Same
// semantics as Login.
func (m *Manager) UpdateUser(ctx context.Context, user models.UserSummary, token string) error {
	return m.replace(ctx, user, token)
}

func (m *Manager) replace(ctx context.Context, user models.UserSummary, token string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := storage.NewSQLiteRepository(tx)
		if err := r.Set(ctx, keyUser, rawUser); err != nil {
			return err
		}
		return r.Set(ctx, keyToken, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.loading = false
	m.mu.Unlock()
	return nil
}

// Logout clears the identity and token together and erases the persisted
// entries. The in-memory session is cleared even if the store write fails,
// so a logged-out prompt never shows a stale identity.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()

	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := storage.NewSQLiteRepository(tx)
		if err := r.Delete(ctx, keyUser); err != nil {
			return err
		}
		return r.Delete(ctx, keyToken)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Snapshot returns a consistent copy of the session; the User pointer is
// copied so callers cannot mutate the stored identity.
func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Session{Token: m.token, Loading: m.loading}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}
