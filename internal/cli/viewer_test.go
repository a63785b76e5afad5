package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvterm/internal/api"
	"cvterm/internal/models"
)

func sampleCV() *models.CV {
	return &models.CV{
		ID:      "cv1",
		OwnerID: "owner1",
		PersonalInfo: models.PersonalInfo{
			FirstName: "Bob",
			LastName:  "Durand",
		},
		IsVisible: true,
	}
}

func TestViewCV_ForbiddenForcesLogin(t *testing.T) {
	stubPassword(t, "Secret1!")

	loginCalled := false
	client := &fakeClient{
		getCV: func(ctx context.Context, id string) (*models.CV, error) {
			return nil, fmt.Errorf("get cv: %w", &api.APIError{Status: 403})
		},
		login: func(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
			loginCalled = true
			return &models.AuthResponse{User: models.UserSummary{ID: "u1", Name: "Alice"}, Token: "tok"}, nil
		},
	}
	app, out := newTestApp(t, client, loggedInSession(), "a@x.com\n")

	require.NoError(t, app.ViewCV(context.Background(), "cv1"))

	assert.Contains(t, out.String(), "not allowed")
	assert.True(t, loginCalled)
}

func TestViewCV_NotFound(t *testing.T) {
	client := &fakeClient{
		getCV: func(ctx context.Context, id string) (*models.CV, error) {
			return nil, fmt.Errorf("get cv: %w", &api.APIError{Status: 404})
		},
	}
	app, out := newTestApp(t, client, loggedInSession(), "")

	err := app.ViewCV(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Contains(t, out.String(), "No such CV.")
}

func TestViewCV_CommentsFetchedOnceAcrossToggles(t *testing.T) {
	fetches := 0
	client := &fakeClient{
		getCV: func(ctx context.Context, id string) (*models.CV, error) {
			return sampleCV(), nil
		},
		listComments: func(ctx context.Context, cvID string) ([]models.Comment, error) {
			fetches++
			assert.Equal(t, "cv1", cvID)
			return []models.Comment{
				{ID: "c1", CVID: "cv1", AuthorID: "u1", AuthorName: "Alice", Text: "Nice"},
			}, nil
		},
	}
	// Show, hide, show again, then leave.
	app, out := newTestApp(t, client, loggedInSession(), "comments\ncomments\ncomments\nback\n")

	require.NoError(t, app.ViewCV(context.Background(), "cv1"))

	assert.Equal(t, 1, fetches, "toggling visibility must not re-fetch")
	assert.Contains(t, out.String(), "Nice")
	assert.Contains(t, out.String(), "Comments hidden.")
}

func TestViewCV_FailedCommentLoadIsRetryable(t *testing.T) {
	fetches := 0
	client := &fakeClient{
		getCV: func(ctx context.Context, id string) (*models.CV, error) {
			return sampleCV(), nil
		},
		listComments: func(ctx context.Context, cvID string) ([]models.Comment, error) {
			fetches++
			if fetches == 1 {
				return nil, fmt.Errorf("list comments: %w", &api.APIError{Status: 500})
			}
			return []models.Comment{{ID: "c1", Text: "Finally"}}, nil
		},
	}
	app, out := newTestApp(t, client, loggedInSession(), "comments\ncomments\nback\n")

	require.NoError(t, app.ViewCV(context.Background(), "cv1"))

	assert.Equal(t, 2, fetches)
	assert.Contains(t, out.String(), "Could not load comments")
	assert.Contains(t, out.String(), "Finally")
}

func TestViewCV_AddCommentRefreshesList(t *testing.T) {
	var added models.CommentRequest
	listed := []models.Comment{}
	client := &fakeClient{
		getCV: func(ctx context.Context, id string) (*models.CV, error) {
			return sampleCV(), nil
		},
		addComment: func(ctx context.Context, req models.CommentRequest) error {
			added = req
			listed = append(listed, models.Comment{ID: "c9", CVID: req.CVID, AuthorID: req.UserID, Text: req.Comment})
			return nil
		},
		listComments: func(ctx context.Context, cvID string) ([]models.Comment, error) {
			return listed, nil
		},
	}
	app, out := newTestApp(t, client, loggedInSession(), "comment\nGreat CV!\nback\n")

	require.NoError(t, app.ViewCV(context.Background(), "cv1"))

	assert.Equal(t, models.CommentRequest{CVID: "cv1", UserID: "u1", Comment: "Great CV!"}, added)
	assert.Contains(t, out.String(), "Great CV!", "refreshed list is rendered")
}

func TestViewCV_EditCommentOfAnotherUser(t *testing.T) {
	client := &fakeClient{
		getCV: func(ctx context.Context, id string) (*models.CV, error) {
			return sampleCV(), nil
		},
		editComment: func(ctx context.Context, id, text string) error {
			return fmt.Errorf("edit comment: %w", &api.APIError{Status: 403})
		},
	}
	app, out := newTestApp(t, client, loggedInSession(), "edit c1\nNew text\nback\n")

	require.NoError(t, app.ViewCV(context.Background(), "cv1"))

	assert.Contains(t, out.String(), "only edit your own comments")
}

func TestViewCV_DeleteCommentRefreshes(t *testing.T) {
	deleted := ""
	client := &fakeClient{
		getCV: func(ctx context.Context, id string) (*models.CV, error) {
			return sampleCV(), nil
		},
		deleteComment: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
		listComments: func(ctx context.Context, cvID string) ([]models.Comment, error) {
			return nil, nil
		},
	}
	app, _ := newTestApp(t, client, loggedInSession(), "delete c1\nback\n")

	require.NoError(t, app.ViewCV(context.Background(), "cv1"))
	assert.Equal(t, "c1", deleted)
}
