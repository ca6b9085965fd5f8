package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer()
	require.NoError(t, err)
	return s
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tree inspector")
}

func TestParseEndpoint(t *testing.T) {
	s := newTestServer(t)
	body := `{"file": "t.bas", "source": "Beep\n"}`
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp parseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Root", resp.Tree.Kind)
	assert.Equal(t, "Beep\n", resp.Tree.Text)
	assert.Empty(t, resp.Failures)
}

func TestParseEndpointReportsFailures(t *testing.T) {
	s := newTestServer(t)
	body := `{"source": "Beep\n?\n"}`
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp parseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Failures)
	assert.Equal(t, 2, resp.Failures[0].LineStart)
}

func TestTokenizeEndpoint(t *testing.T) {
	s := newTestServer(t)
	body := `{"source": "Dim x"}`
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tokenize", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp tokenizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tokens, 3)
	assert.Equal(t, "Dim", resp.Tokens[0].Kind)
}

func TestParseEndpointRejectsGet(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parse", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
