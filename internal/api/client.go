// Package api is the typed gateway to the CV platform REST service. It is
// the only place that builds HTTP requests, attaches the bearer token and
// maps response statuses to errors; every screen goes through it.
package api

import (
	"context"

	"cvterm/internal/models"
)

// TokenSource supplies the current bearer token for authenticated calls.
// An empty string means no session; the request is still sent and the
// server answers with 401/403.
type TokenSource interface {
	Token() string
}

// Client is the remote API surface used by the screens.
//
// Every call returns the parsed response body on success. Non-success
// statuses surface as *APIError values matching the sentinels in errors.go.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)

	CreateCV(ctx context.Context, draft models.CVDraft) (*models.CV, error)
	ListVisibleCVs(ctx context.Context) ([]models.CV, error)
	GetCV(ctx context.Context, id string) (*models.CV, error)
	GetCVByOwner(ctx context.Context, userID string) (*models.CV, error)
	UpdateCV(ctx context.Context, id string, draft models.CVDraft) (*models.CV, error)
	DeleteCV(ctx context.Context, id string) error

	ListComments(ctx context.Context, cvID string) ([]models.Comment, error)
	AddComment(ctx context.Context, req models.CommentRequest) error
	EditComment(ctx context.Context, id string, text string) error
	DeleteComment(ctx context.Context, id string) error

	UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (*models.AuthResponse, error)
	DeleteAccount(ctx context.Context, userID string) error
}
