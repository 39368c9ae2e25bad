package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champsapp/champs-cli/internal/client/models"
	"github.com/champsapp/champs-cli/internal/common"
	"github.com/champsapp/champs-cli/internal/logging"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func testToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logging.NewDefault(io.Discard, slog.LevelError)
	return NewHTTPClient(srv.URL, staticTokens(token), log), srv
}

func TestLogin_DecodesResponse(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc","user":{"_id":"u1","username":"alice","email":"a@example.com"}}`))
	})

	resp, err := c.Login(context.Background(), "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Empty(t, gotAuth, "login must not send a bearer token")
}

func TestLogin_ServerMessageSurfaces(t *testing.T) {
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"wrong password"}`))
	})

	_, err := c.Login(context.Background(), "a@example.com", "pw")
	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusUnauthorized, serr.Status)
	assert.Equal(t, "wrong password", serr.Message)
}

func TestAuthenticatedCall_AttachesBearerAndRequestID(t *testing.T) {
	token := testToken(t)
	c, _ := newTestClient(t, token, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"_id":"t1","name":"Cup"}`))
	})

	got, err := c.GetTournament(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, "Cup", got.Name)
}

func TestAuthenticatedCall_MissingToken_FailsFast(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) { hits++ })

	_, err := c.ListTournaments(context.Background())
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Zero(t, hits, "no request may be issued without a token")
}

func TestAuthenticatedCall_GarbageToken_FailsFast(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, "garbage-not-jwt", func(w http.ResponseWriter, r *http.Request) { hits++ })

	_, err := c.CreateTournament(context.Background(), &models.CreateTournamentRequest{Name: "Cup"})
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Zero(t, hits, "no request may be issued with a malformed token")
}

func TestServerError_MessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"json message", `{"message":"tournament not found"}`, "tournament not found"},
		{"raw text", `upstream exploded`, "upstream exploded"},
		{"empty body", ``, defaultErrorMessage},
		{"json without message", `{"error":"nope"}`, `{"error":"nope"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, testToken(t), func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := c.GetTournament(context.Background(), "t1")
			var serr *ServerError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.want, serr.Message)
		})
	}
}

func TestNetworkError_Wrapped(t *testing.T) {
	c, srv := newTestClient(t, testToken(t), func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := c.ListTournaments(context.Background())
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestListTournaments_DecodesSequence(t *testing.T) {
	c, _ := newTestClient(t, testToken(t), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tournaments", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id":"t1","name":"Cup"},{"_id":"t2","name":"League"}]`))
	})

	list, err := c.ListTournaments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t2", list[1].ID)
}

func TestSaveMatchResult_PostsToMatchesPath(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, testToken(t), func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"_id":"t1","name":"Cup"}`))
	})

	_, err := c.SaveMatchResult(context.Background(), "t1", &models.MatchResult{MatchID: "m1", HomeScore: 2, AwayScore: 1})
	require.NoError(t, err)
	assert.Equal(t, "/tournaments/t1/matches", gotPath)
}
