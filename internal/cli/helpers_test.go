package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cvterm/internal/api"
	"cvterm/internal/config"
	"cvterm/internal/logging"
	"cvterm/internal/models"
	"cvterm/internal/session"
)

// fakeClient implements api.Client with per-method function fields. Methods
// without a configured function fail the test when called.
type fakeClient struct {
	t *testing.T

	register       func(ctx context.Context, req models.RegisterRequest) error
	login          func(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	createCV       func(ctx context.Context, draft models.CVDraft) (*models.CV, error)
	listVisibleCVs func(ctx context.Context) ([]models.CV, error)
	getCV          func(ctx context.Context, id string) (*models.CV, error)
	getCVByOwner   func(ctx context.Context, userID string) (*models.CV, error)
	updateCV       func(ctx context.Context, id string, draft models.CVDraft) (*models.CV, error)
	deleteCV       func(ctx context.Context, id string) error
	listComments   func(ctx context.Context, cvID string) ([]models.Comment, error)
	addComment     func(ctx context.Context, req models.CommentRequest) error
	editComment    func(ctx context.Context, id, text string) error
	deleteComment  func(ctx context.Context, id string) error
	updateProfile  func(ctx context.Context, userID string, req models.ProfileUpdate) (*models.AuthResponse, error)
	deleteAccount  func(ctx context.Context, userID string) error
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	if f.register == nil {
		f.t.Fatal("unexpected Register call")
	}
	return f.register(ctx, req)
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	if f.login == nil {
		f.t.Fatal("unexpected Login call")
	}
	return f.login(ctx, creds)
}

func (f *fakeClient) CreateCV(ctx context.Context, draft models.CVDraft) (*models.CV, error) {
	if f.createCV == nil {
		f.t.Fatal("unexpected CreateCV call")
	}
	return f.createCV(ctx, draft)
}

func (f *fakeClient) ListVisibleCVs(ctx context.Context) ([]models.CV, error) {
	if f.listVisibleCVs == nil {
		f.t.Fatal("unexpected ListVisibleCVs call")
	}
	return f.listVisibleCVs(ctx)
}

func (f *fakeClient) GetCV(ctx context.Context, id string) (*models.CV, error) {
	if f.getCV == nil {
		f.t.Fatal("unexpected GetCV call")
	}
	return f.getCV(ctx, id)
}

func (f *fakeClient) GetCVByOwner(ctx context.Context, userID string) (*models.CV, error) {
	if f.getCVByOwner == nil {
		f.t.Fatal("unexpected GetCVByOwner call")
	}
	return f.getCVByOwner(ctx, userID)
}

func (f *fakeClient) UpdateCV(ctx context.Context, id string, draft models.CVDraft) (*models.CV, error) {
	if f.updateCV == nil {
		f.t.Fatal("unexpected UpdateCV call")
	}
	return f.updateCV(ctx, id, draft)
}

func (f *fakeClient) DeleteCV(ctx context.Context, id string) error {
	if f.deleteCV == nil {
		f.t.Fatal("unexpected DeleteCV call")
	}
	return f.deleteCV(ctx, id)
}

func (f *fakeClient) ListComments(ctx context.Context, cvID string) ([]models.Comment, error) {
	if f.listComments == nil {
		f.t.Fatal("unexpected ListComments call")
	}
	return f.listComments(ctx, cvID)
}

func (f *fakeClient) AddComment(ctx context.Context, req models.CommentRequest) error {
	if f.addComment == nil {
		f.t.Fatal("unexpected AddComment call")
	}
	return f.addComment(ctx, req)
}

func (f *fakeClient) EditComment(ctx context.Context, id, text string) error {
	if f.editComment == nil {
		f.t.Fatal("unexpected EditComment call")
	}
	return f.editComment(ctx, id, text)
}

func (f *fakeClient) DeleteComment(ctx context.Context, id string) error {
	if f.deleteComment == nil {
		f.t.Fatal("unexpected DeleteComment call")
	}
	return f.deleteComment(ctx, id)
}

func (f *fakeClient) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (*models.AuthResponse, error) {
	if f.updateProfile == nil {
		f.t.Fatal("unexpected UpdateProfile call")
	}
	return f.updateProfile(ctx, userID, req)
}

func (f *fakeClient) DeleteAccount(ctx context.Context, userID string) error {
	if f.deleteAccount == nil {
		f.t.Fatal("unexpected DeleteAccount call")
	}
	return f.deleteAccount(ctx, userID)
}

var _ api.Client = (*fakeClient)(nil)

// fakeSession implements SessionStore in memory, with no persistence.
type fakeSession struct {
	user    *models.UserSummary
	token   string
	loading bool

	restoreErr error
	logoutErr  error
}

func (f *fakeSession) Restore(ctx context.Context) error {
	f.loading = false
	return f.restoreErr
}

func (f *fakeSession) Login(ctx context.Context, user models.UserSummary, token string) error {
	f.user, f.token, f.loading = &user, token, false
	return nil
}

func (f *fakeSession) UpdateUser(ctx context.Context, user models.UserSummary, token string) error {
	f.user, f.token = &user, token
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) error {
	f.user, f.token = nil, ""
	return f.logoutErr
}

func (f *fakeSession) Snapshot() session.Session {
	s := session.Session{Token: f.token, Loading: f.loading}
	if f.user != nil {
		u := *f.user
		s.User = &u
	}
	return s
}

var _ SessionStore = (*fakeSession)(nil)

func loggedInSession() *fakeSession {
	return &fakeSession{
		user:  &models.UserSummary{ID: "u1", Name: "Alice", Email: "a@x.com"},
		token: "tok",
	}
}

// newTestApp builds an App over a fake client and session, with input
// scripted line by line and output captured in the returned buffer.
func newTestApp(t *testing.T, client *fakeClient, store SessionStore, input string) (*App, *bytes.Buffer) {
	t.Helper()
	if client != nil {
		client.t = t
	}
	out := &bytes.Buffer{}
	return &App{
		config:  &config.Config{},
		api:     client,
		session: store,
		logger:  logging.NewTextLogger(io.Discard, slog.LevelError),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}, out
}

// stubPassword swaps the password seam for the duration of the test.
func stubPassword(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	i := 0
	getPassword = func(io.Writer) (string, error) {
		if i >= len(passwords) {
			return "", errors.New("no more scripted passwords")
		}
		pw := passwords[i]
		i++
		return pw, nil
	}
}
