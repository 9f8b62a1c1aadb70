package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/misinfo-mole/apimodels"
	"github.com/sozercan/misinfo-mole/internal/analyzer"
	"github.com/sozercan/misinfo-mole/internal/config"
	"github.com/sozercan/misinfo-mole/internal/gateway"
	"github.com/sozercan/misinfo-mole/internal/llm"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"},
	}
	a := analyzer.New(gateway.New(llm.NewMock()), "gemini-pro", config.ModeMock)

	ts := httptest.NewServer(New(cfg, a).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleAnalyze(t *testing.T) {
	ts := testServer(t)

	body, err := json.Marshal(apimodels.AnalysisRequest{Text: "a suspicious forwarded message"})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/v1/analyze", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var result apimodels.AnalysisResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)

	assert.Equal(t, llm.MockResponse, result.RedFlags)
	assert.Equal(t, llm.MockResponse, result.Summary)
	assert.Equal(t, llm.MockResponse, result.Insights)
	assert.Equal(t, "mock", result.Metadata.Mode)
}

func TestHandleAnalyzeEmptyText(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/analyze", "application/json", bytes.NewReader([]byte(`{"text": "   "}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	msg, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(msg), "Please paste text to analyze.")
}

func TestHandleAnalyzeInvalidJSON(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/analyze", "application/json", bytes.NewReader([]byte(`{not json`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleHealth(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]string
	err = json.NewDecoder(resp.Body).Decode(&status)
	require.NoError(t, err)
	assert.Equal(t, "ok", status["status"])
}
