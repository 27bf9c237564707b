package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/authors-api/internal/jsonapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// NewJSONAPIRequest builds a request carrying the JSON:API Accept header, the
// JSON:API Content-Type when body is non-nil, and a bearer token when token
// is non-empty. body is marshalled unless it is already a string.
func NewJSONAPIRequest(t *testing.T, method, url, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Accept", jsonapi.MediaType)
	if body != nil {
		req.Header.Set("Content-Type", jsonapi.MediaType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// DoJSONAPI sends a JSON:API request to server and returns the response,
// whose body is closed at test cleanup.
func DoJSONAPI(t *testing.T, server *httptest.Server, method, path, token string, body any) *http.Response {
	t.Helper()
	req := NewJSONAPIRequest(t, method, server.URL+path, token, body)

	client := server.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	resp, err := client.Do(req)
	require.NoError(t, err)
	CleanupResponseBody(t, resp)
	return resp
}

// ResourceDocument is a decoded single-resource document with string attributes.
type ResourceDocument struct {
	Data ResourceData `json:"data"`
}

// CollectionDocument is a decoded collection document.
type CollectionDocument struct {
	Data []ResourceData `json:"data"`
}

// ResourceData is a decoded resource object.
type ResourceData struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// DecodeResource decodes a single-resource document from resp.
func DecodeResource(t *testing.T, resp *http.Response) ResourceDocument {
	t.Helper()
	var doc ResourceDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc), "failed to decode resource document")
	return doc
}

// DecodeCollection decodes a collection document from resp.
func DecodeCollection(t *testing.T, resp *http.Response) CollectionDocument {
	t.Helper()
	var doc CollectionDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc), "failed to decode collection document")
	return doc
}

// DecodeErrors decodes an error document from resp.
func DecodeErrors(t *testing.T, resp *http.Response) jsonapi.ErrorDocument {
	t.Helper()
	var doc jsonapi.ErrorDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc), "failed to decode error document")
	return doc
}

// AssertJSONAPIResponse checks the status code and the JSON:API Content-Type.
func AssertJSONAPIResponse(t *testing.T, resp *http.Response, expectedStatus int) {
	t.Helper()
	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)
	assert.Equal(t, jsonapi.MediaType, resp.Header.Get("Content-Type"))
}
