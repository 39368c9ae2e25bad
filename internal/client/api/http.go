package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/champsapp/champs-cli/internal/client/models"
	"github.com/champsapp/champs-cli/internal/common"
	"github.com/champsapp/champs-cli/internal/logging"
)

// HTTPClient talks to the champs backend over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. The base URL is
// resolved once at startup (config.ResolveBaseURL) and never re-examined.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

var jwtParser = jwt.NewParser()

// bearerToken returns the current token after a minimal shape check: it must
// be present and parse as a JWT (signature is not verified client-side).
// Anything else fails before a request is built, so a garbage token never
// reaches the wire.
func (c *HTTPClient) bearerToken() (string, error) {
	token := c.tokens.Token()
	if token == "" {
		return "", fmt.Errorf("%w: no token stored, log in first", common.ErrNotAuthenticated)
	}
	if _, _, err := jwtParser.ParseUnverified(token, jwt.MapClaims{}); err != nil {
		return "", fmt.Errorf("%w: stored token is malformed, log in again", common.ErrNotAuthenticated)
	}
	return token, nil
}

// do performs one JSON request against the backend. When authed is true the
// bearer token is attached (or the call fails fast without network I/O).
// A non-nil out receives the decoded 2xx response body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var token string
	if authed {
		var err error
		if token, err = c.bearerToken(); err != nil {
			return err
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", common.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := newServerError(resp.StatusCode, data)
		c.log.Warn(ctx, "server rejected request", "method", method, "path", path, "status", resp.StatusCode, "message", serr.Message)
		return serr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateTournament(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error) {
	var t models.Tournament
	if err := c.do(ctx, http.MethodPost, "/tournaments", req, &t, true); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	var t models.Tournament
	if err := c.do(ctx, http.MethodGet, "/tournaments/"+url.PathEscape(id), nil, &t, true); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) ListTournaments(ctx context.Context) ([]*models.Tournament, error) {
	var list []*models.Tournament
	if err := c.do(ctx, http.MethodGet, "/tournaments", nil, &list, true); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) SaveMatchResult(ctx context.Context, id string, result *models.MatchResult) (*models.Tournament, error) {
	var t models.Tournament
	if err := c.do(ctx, http.MethodPost, "/tournaments/"+url.PathEscape(id)+"/matches", result, &t, true); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) SavePlayoffResult(ctx context.Context, id string, result *models.MatchResult) (*models.Tournament, error) {
	var t models.Tournament
	if err := c.do(ctx, http.MethodPost, "/tournaments/"+url.PathEscape(id)+"/playoffs", result, &t, true); err != nil {
		return nil, err
	}
	return &t, nil
}
