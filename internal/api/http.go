package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvterm/internal/models"
)

// HTTPClient implements Client over net/http against a fixed base URL.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	tokens  TokenSource
}

// NewHTTPClient builds a gateway bound to baseURL. Every request runs under
// a context bounded by timeout; the bearer token for authenticated calls is
// read from tokens at request time.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		tokens:  tokens,
	}
}

// serverMessage is the error envelope the service uses; older deployments
// answered with "error", newer ones with "message".
type serverMessage struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one request/response round trip: marshal body, attach
// headers, map the status, unmarshal into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: marshal: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return fmt.Errorf("%s %s: %v: %w", method, path, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg serverMessage
		if json.Unmarshal(data, &msg) == nil {
			if msg.Error != "" {
				apiErr.Message = msg.Error
			} else {
				apiErr.Message = msg.Message
			}
		}
		return fmt.Errorf("%s %s: %w", method, path, apiErr)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: unmarshal: %w", method, path, err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil, false)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateCV(ctx context.Context, draft models.CVDraft) (*models.CV, error) {
	var cv models.CV
	if err := c.do(ctx, http.MethodPost, "/api/cv", draft, &cv, true); err != nil {
		return nil, err
	}
	return &cv, nil
}

func (c *HTTPClient) ListVisibleCVs(ctx context.Context) ([]models.CV, error) {
	var cvs []models.CV
	if err := c.do(ctx, http.MethodGet, "/api/cv/getAllVisible", nil, &cvs, true); err != nil {
		return nil, err
	}
	return cvs, nil
}

func (c *HTTPClient) GetCV(ctx context.Context, id string) (*models.CV, error) {
	var cv models.CV
	if err := c.do(ctx, http.MethodGet, "/api/cv/"+id, nil, &cv, true); err != nil {
		return nil, err
	}
	return &cv, nil
}

// GetCVByOwner fetches the single CV belonging to userID. Some deployments
// answer with the object itself and some with a one-element array; both
// decode to one CV here. An empty array is reported as ErrNotFound, the
// same as a 404.
func (c *HTTPClient) GetCVByOwner(ctx context.Context, userID string) (*models.CV, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/cv/user/"+userID, nil, &raw, true); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var cvs []models.CV
		if err := json.Unmarshal(trimmed, &cvs); err != nil {
			return nil, fmt.Errorf("GET /api/cv/user/%s: unmarshal: %w", userID, err)
		}
		if len(cvs) == 0 {
			return nil, fmt.Errorf("GET /api/cv/user/%s: empty result: %w", userID, ErrNotFound)
		}
		return &cvs[0], nil
	}

	var cv models.CV
	if err := json.Unmarshal(trimmed, &cv); err != nil {
		return nil, fmt.Errorf("GET /api/cv/user/%s: unmarshal: %w", userID, err)
	}
	return &cv, nil
}

func (c *HTTPClient) UpdateCV(ctx context.Context, id string, draft models.CVDraft) (*models.CV, error) {
	var cv models.CV
	if err := c.do(ctx, http.MethodPut, "/api/cv/"+id, draft, &cv, true); err != nil {
		return nil, err
	}
	return &cv, nil
}

func (c *HTTPClient) DeleteCV(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cv/"+id, nil, nil, true)
}

// ListComments returns the reviews for a CV. The service wraps the list in
// a "recommendations" envelope.
func (c *HTTPClient) ListComments(ctx context.Context, cvID string) ([]models.Comment, error) {
	var resp struct {
		Recommendations []models.Comment `json:"recommendations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/review/cv/"+cvID, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, req models.CommentRequest) error {
	return c.do(ctx, http.MethodPost, "/api/review/", req, nil, true)
}

func (c *HTTPClient) EditComment(ctx context.Context, id string, text string) error {
	return c.do(ctx, http.MethodPut, "/api/review/"+id, models.CommentEditRequest{Comment: text}, nil, true)
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/review/"+id, nil, nil, true)
}

// UpdateProfile replaces the account's name, email and password. The server
// answers with the updated identity and a fresh token; the caller feeds both
// back into the session.
func (c *HTTPClient) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPut, "/api/user/"+userID, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/user/"+userID, nil, nil, true)
}
