package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/authors-api/internal/api/middleware"
	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/jsonapi"
	"github.com/phrazzld/authors-api/internal/mocks"
	"github.com/phrazzld/authors-api/internal/testutils"
	"github.com/phrazzld/authors-api/internal/testutils/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Database: config.DatabaseConfig{
			Driver: config.DriverMemory,
		},
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret-that-is-at-least-32-characters",
			TokenLifetimeMinutes: 60,
			BCryptCost:           4,
		},
		Dev: config.DevConfig{
			UserName:     "John Doe",
			UserEmail:    "john@example.com",
			UserPassword: "secret",
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestApplication builds a memory-backed application and serves its router.
func newTestApplication(t *testing.T) (*application, string) {
	t.Helper()
	app, err := newApplication(context.Background(), testConfig(), testLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)

	server := testutils.CreateTestServer(t, app.setupRouter())
	return app, server.URL
}

func TestNewApplicationRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Driver = "mysql"

	app, err := newApplication(context.Background(), cfg, testLogger())
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestNewApplicationRejectsWeakSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = "short"

	app, err := newApplication(context.Background(), cfg, testLogger())
	assert.Error(t, err)
	assert.Nil(t, app)
}

// loggedDevelopmentToken returns the message logged right after the
// "Personal access token:" announcement.
func loggedDevelopmentToken(t *testing.T, logs *bytes.Buffer) string {
	t.Helper()
	var messages []string
	dec := json.NewDecoder(logs)
	for dec.More() {
		var record struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, dec.Decode(&record))
		messages = append(messages, record.Msg)
	}
	for i, msg := range messages {
		if msg == "Personal access token:" && i+1 < len(messages) {
			return messages[i+1]
		}
	}
	t.Fatalf("no development token in logs: %q", messages)
	return ""
}

func TestMemoryDriverBootstrapsDevelopmentToken(t *testing.T) {
	cfg := testConfig()
	cfg.Dev.SeedAuthors = 4

	var logs bytes.Buffer
	app, err := newApplication(context.Background(), cfg, slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	server := testutils.CreateTestServer(t, app.setupRouter())

	token := loggedDevelopmentToken(t, &logs)

	req := testutils.NewJSONAPIRequest(t, http.MethodGet, server.URL+"/api/v1/authors", token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	testutils.CleanupResponseBody(t, resp)

	testutils.AssertJSONAPIResponse(t, resp, http.StatusOK)
	assert.Len(t, testutils.DecodeCollection(t, resp).Data, 4)
}

func TestNewApplicationRejectsInvalidDevUser(t *testing.T) {
	cfg := testConfig()
	cfg.Dev.UserEmail = "not-an-email"

	app, err := newApplication(context.Background(), cfg, testLogger())
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestHealth(t *testing.T) {
	_, baseURL := newTestApplication(t)

	resp, err := http.Get(baseURL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestAuthorsRequireBearerToken(t *testing.T) {
	_, baseURL := newTestApplication(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutils.NewJSONAPIRequest(t, http.MethodGet, baseURL+"/api/v1/authors", tt.token, nil)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			testutils.CleanupResponseBody(t, resp)

			testutils.AssertJSONAPIResponse(t, resp, http.StatusUnauthorized)
			doc := testutils.DecodeErrors(t, resp)
			require.Len(t, doc.Errors, 1)
			assert.Equal(t, middleware.UnauthenticatedTitle, doc.Errors[0].Title)
		})
	}
}

func TestNegotiationRunsBeforeAuthentication(t *testing.T) {
	_, baseURL := newTestApplication(t)

	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/authors", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	testutils.CleanupResponseBody(t, resp)

	assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
	assert.Equal(t, jsonapi.MediaType, resp.Header.Get("Content-Type"))
}

func TestAuthorsEndToEnd(t *testing.T) {
	app, baseURL := newTestApplication(t)
	ctx := context.Background()
	principal := fixtures.CreatePrincipal(ctx, t, app.users, app.clients, app.tokens)

	do := func(method, path string, body any) *http.Response {
		t.Helper()
		req := testutils.NewJSONAPIRequest(t, method, baseURL+path, principal.Token, body)
		client := &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		}
		resp, err := client.Do(req)
		require.NoError(t, err)
		testutils.CleanupResponseBody(t, resp)
		return resp
	}

	resp := do(http.MethodGet, "/api/v1/authors", nil)
	testutils.AssertJSONAPIResponse(t, resp, http.StatusOK)
	assert.Empty(t, testutils.DecodeCollection(t, resp).Data)

	resp = do(http.MethodPost, "/api/v1/authors", map[string]any{
		"data": map[string]any{
			"type":       "authors",
			"attributes": map[string]any{"name": "John Doe"},
		},
	})
	testutils.AssertJSONAPIResponse(t, resp, http.StatusCreated)
	created := testutils.DecodeResource(t, resp)
	assert.Equal(t, baseURL+"/api/v1/authors/"+created.Data.ID, resp.Header.Get("Location"))

	resp = do(http.MethodPatch, "/api/v1/authors/"+created.Data.ID, map[string]any{
		"data": map[string]any{
			"type":       "authors",
			"id":         created.Data.ID,
			"attributes": map[string]any{"name": "Jane Doe"},
		},
	})
	testutils.AssertJSONAPIResponse(t, resp, http.StatusOK)
	assert.Equal(t, "Jane Doe", testutils.DecodeResource(t, resp).Data.Attributes["name"])

	resp = do(http.MethodGet, "/api/v1/authors/"+created.Data.ID, nil)
	testutils.AssertJSONAPIResponse(t, resp, http.StatusOK)

	resp = do(http.MethodDelete, "/api/v1/authors/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(http.MethodGet, "/api/v1/authors/"+created.Data.ID, nil)
	testutils.AssertJSONAPIResponse(t, resp, http.StatusNotFound)
}

func TestHandlerPanicRendersJSONAPIServerError(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), testLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	app.authors = &mocks.MockAuthorStore{
		ListFn: func(context.Context) ([]*domain.Author, error) { panic("store exploded") },
	}
	server := testutils.CreateTestServer(t, app.setupRouter())
	principal := fixtures.CreatePrincipal(context.Background(), t, app.users, app.clients, app.tokens)

	req := testutils.NewJSONAPIRequest(t, http.MethodGet, server.URL+"/api/v1/authors", principal.Token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	testutils.CleanupResponseBody(t, resp)

	testutils.AssertJSONAPIResponse(t, resp, http.StatusInternalServerError)
	doc := testutils.DecodeErrors(t, resp)
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "500", doc.Errors[0].Status)
	assert.NotContains(t, doc.Errors[0].Details, "exploded")
}

func TestServeShutsDownWhenContextEnds(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), testLogger())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln, app.setupRouter()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}
