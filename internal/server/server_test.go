package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FSPro/backend/internal/config"
)

var (
	testOnce sync.Once
	testSrv  *Server
)

// testServer builds one shared instance; Prometheus collectors register
// globally, so a second Server in the same process would collide.
func testServer(t *testing.T) *Server {
	t.Helper()
	testOnce.Do(func() {
		cfg := config.Default()
		cfg.Icons.CacheDir = filepath.Join(os.TempDir(), "fspro-server-test-icons")
		cfg.Workers.Count = 2

		srv, err := New(cfg)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := srv.Pool().Start(context.Background()); err != nil {
			t.Fatalf("pool start failed: %v", err)
		}
		testSrv = srv
	})
	return testSrv
}

func doRequest(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		buf, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestRootAndHealth(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "online")

	w = doRequest(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListServices(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count    int `json:"count"`
		Services []struct {
			ID string `json:"id"`
		} `json:"services"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "fspro", resp.Services[0].ID)

	w = doRequest(t, srv, http.MethodGet, "/services?category=system", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestExecuteService(t *testing.T) {
	srv := testServer(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(file, []byte("hi"), 0o644))

	w := doRequest(t, srv, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "fspro.metadata",
		"params":  map[string]interface{}{"path": file},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "hello", result.Data["name"])
	assert.Equal(t, float64(2), result.Data["size"])
}

func TestExecuteServiceValidation(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, http.MethodPost, "/services/execute", map[string]interface{}{
		"params": map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, srv, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "not a tool id",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t)

	// Prime the counters so the scrape has at least one sample.
	doRequest(t, srv, http.MethodGet, "/", nil)

	w := doRequest(t, srv, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fspro_http_requests_total")

	w = doRequest(t, srv, http.MethodGet, "/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_requests")
}
