// Package api is the HTTP client for the pad server. Every sync operation
// in the UI goes through it; it owns the bearer header, the error taxonomy,
// and the liberal timestamp parsing the server's history payload needs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"github.com/Paintersrp/pad/internal/notes"
)

// TokenFunc supplies the current bearer token. Returning "" sends the
// request unauthenticated.
type TokenFunc func() string

type Client struct {
	endpoint string
	http     *http.Client
	token    TokenFunc
	log      *zap.Logger
}

func NewClient(endpoint string, token TokenFunc, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     http.DefaultClient,
		token:    token,
		log:      logger,
	}
}

// SetHTTPClient swaps the underlying transport. Used by tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

type AuthResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type Profile struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DriveLinked bool   `json:"drive_linked"`
}

type SaveResult struct {
	Message     string `json:"message"`
	Filename    string `json:"filename"`
	DriveFileID string `json:"drive_file_id"`
}

type DriveLink struct {
	AuthURL     string `json:"auth_url"`
	RedirectURI string `json:"redirect_uri"`
}

type Health struct {
	Status     string `json:"status"`
	BackendURL string `json:"backend_url"`
}

// wireNote is the /history row shape. The note id travels as "filename";
// it is an opaque key, not a path.
type wireNote struct {
	Filename    string `json:"filename"`
	Title       string `json:"title"`
	Filecontent string `json:"filecontent"`
	DriveFileID string `json:"drive_file_id"`
	UpdatedAt   string `json:"updated_at"`
}

func (c *Client) Register(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/register",
		map[string]string{"email": email, "password": password}, &out, false)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/login",
		map[string]string{"email": email, "password": password}, &out, false)
	if err != nil {
		return AuthResult{}, err
	}
	if out.Token == "" {
		return AuthResult{}, &RequestError{Message: "token missing from login response"}
	}
	return out, nil
}

func (c *Client) Me(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodGet, "/me", nil, &out, true)
	return out, err
}

// History fetches the full note list, newest first as the server orders it.
func (c *Client) History(ctx context.Context) ([]notes.Note, error) {
	var rows []wireNote
	if err := c.do(ctx, http.MethodGet, "/history", nil, &rows, true); err != nil {
		return nil, err
	}

	list := make([]notes.Note, 0, len(rows))
	for _, row := range rows {
		list = append(list, notes.Note{
			ID:          row.Filename,
			Title:       row.Title,
			Content:     row.Filecontent,
			UpdatedAt:   parseUpdatedAt(row.UpdatedAt),
			DriveFileID: row.DriveFileID,
		})
	}
	return list, nil
}

// Save creates a note when id is empty, updates it otherwise. The server
// assigns ids; the returned SaveResult carries the one to cache.
func (c *Client) Save(ctx context.Context, id, title, content string) (SaveResult, error) {
	body := map[string]string{"title": title, "content": content}
	if id != "" {
		body["filename"] = id
	}

	var out SaveResult
	err := c.do(ctx, http.MethodPost, "/save", body, &out, true)
	return out, err
}

// Delete removes the given notes in one batched request.
func (c *Client) Delete(ctx context.Context, ids []string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/delete",
		map[string][]string{"filenames": ids}, &out, true)
	return out.Message, err
}

// DriveLinkStart asks the server for the Google authorization URL the
// user must visit to link their Drive.
func (c *Client) DriveLinkStart(ctx context.Context) (DriveLink, error) {
	var out DriveLink
	err := c.do(ctx, http.MethodGet, "/auth/google/start", nil, &out, true)
	if err != nil {
		return DriveLink{}, err
	}
	if out.AuthURL == "" {
		return DriveLink{}, &RequestError{Message: "server did not return an authorization URL"}
	}
	return out, nil
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &out, false)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authed {
		token := c.token()
		if token == "" {
			return fmt.Errorf("%w: no stored credentials", ErrAuthRejected)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &RequestError{Message: fmt.Sprintf("could not reach server: %v", err)}
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrAuthRejected, decodeErrorMessage(resp))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("malformed response body: %v", err),
		}
	}
	return nil
}

func decodeErrorMessage(resp *http.Response) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}

// parseUpdatedAt accepts whatever timestamp rendering the deployment emits.
func parseUpdatedAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
