package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/ku222/AdaptiveCardBuilder/internal/adapters/http"
	"github.com/ku222/AdaptiveCardBuilder/pkg/adapters/memory"
)

const def = `
body:
  - type: TextBlock
    text: Hello
actions:
  - type: Action.Submit
    title: Send
`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	tr := memory.New(memory.WithFallback(func(text, toLang string) string {
		return toLang + ":" + text
	}))
	srv := httptest.NewServer(httpAdapter.NewHandler(tr))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/yaml", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeCard(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func TestRender(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv.URL+"/v1/cards/render", def)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	m := decodeCard(t, resp)
	assert.Equal(t, "AdaptiveCard", m["type"])
	require.Len(t, m["body"].([]any), 1)
	require.Len(t, m["actions"].([]any), 1)
}

func TestRender_BadDefinition(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv.URL+"/v1/cards/render", "body:\n  - type: Widget\n")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranslate(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv.URL+"/v1/cards/translate?to=fr", def)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	m := decodeCard(t, resp)
	body := m["body"].([]any)
	assert.Equal(t, "fr:Hello", body[0].(map[string]any)["text"])
	actions := m["actions"].([]any)
	assert.Equal(t, "fr:Send", actions[0].(map[string]any)["title"])
}

func TestTranslate_UnsupportedLanguage(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv.URL+"/v1/cards/translate?to=xx", def)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranslate_MissingLang(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv.URL+"/v1/cards/translate", def)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranslate_NoTranslatorConfigured(t *testing.T) {
	srv := httptest.NewServer(httpAdapter.NewHandler(nil))
	t.Cleanup(srv.Close)
	resp := post(t, srv.URL+"/v1/cards/translate?to=fr", def)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
