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

func visibleCVs() []models.CV {
	return []models.CV{
		{ID: "cv1", PersonalInfo: models.PersonalInfo{FirstName: "Alice", LastName: "Martin", Description: "Platform engineer"}},
		{ID: "cv2", PersonalInfo: models.PersonalInfo{FirstName: "Bob", LastName: "Durand", Description: "Backend developer"}},
	}
}

func TestBrowse_ListsAll(t *testing.T) {
	client := &fakeClient{
		listVisibleCVs: func(ctx context.Context) ([]models.CV, error) {
			return visibleCVs(), nil
		},
	}
	app, out := newTestApp(t, client, &fakeSession{}, "")

	require.NoError(t, app.Browse(context.Background(), ""))

	assert.Contains(t, out.String(), "Alice Martin")
	assert.Contains(t, out.String(), "Bob Durand")
	assert.Contains(t, out.String(), "view <id>")
}

func TestBrowse_FiltersClientSide(t *testing.T) {
	client := &fakeClient{
		listVisibleCVs: func(ctx context.Context) ([]models.CV, error) {
			return visibleCVs(), nil
		},
	}
	app, out := newTestApp(t, client, &fakeSession{}, "")

	require.NoError(t, app.Browse(context.Background(), "backend"))

	assert.Contains(t, out.String(), "Bob Durand")
	assert.NotContains(t, out.String(), "Alice Martin")
}

func TestBrowse_NoMatches(t *testing.T) {
	client := &fakeClient{
		listVisibleCVs: func(ctx context.Context) ([]models.CV, error) {
			return visibleCVs(), nil
		},
	}
	app, out := newTestApp(t, client, &fakeSession{}, "")

	require.NoError(t, app.Browse(context.Background(), "astronaut"))
	assert.Contains(t, out.String(), `No CVs match "astronaut".`)
}

func TestBrowse_EmptyPlatform(t *testing.T) {
	client := &fakeClient{
		listVisibleCVs: func(ctx context.Context) ([]models.CV, error) {
			return nil, nil
		},
	}
	app, out := newTestApp(t, client, &fakeSession{}, "")

	require.NoError(t, app.Browse(context.Background(), ""))
	assert.Contains(t, out.String(), "No visible CVs yet.")
}

func TestBrowse_ServerDown(t *testing.T) {
	client := &fakeClient{
		listVisibleCVs: func(ctx context.Context) ([]models.CV, error) {
			return nil, fmt.Errorf("list: %w", api.ErrUnavailable)
		},
	}
	app, out := newTestApp(t, client, &fakeSession{}, "")

	err := app.Browse(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, out.String(), "Something went wrong")
}
