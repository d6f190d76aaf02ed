package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarian/internal/platform/config"
)

func testConfig(driver string) config.Server {
	return config.Server{
		Addr:            ":0",
		Environment:     "test",
		LogLevel:        "error",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
		Store:           config.Store{Driver: driver},
		Events:          config.Events{Exchange: "library.events"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewAppMemory(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(config.DriverMemory), discardLogger())
	require.NoError(t, err)
	t.Cleanup(a.close)

	req := httptest.NewRequest(http.MethodPost, "/api/library/borrowers",
		strings.NewReader(`{"name":"Oliver Bennett","email":"oliver@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestNewAppSQLite(t *testing.T) {
	cfg := testConfig(config.DriverSQLite)
	cfg.Store.SQLitePath = filepath.Join(t.TempDir(), "library.db")
	cfg.RateLimit = config.RateLimit{RPS: 100, Burst: 100}

	a, err := newApp(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(a.close)

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"database":"up"`)

	req := httptest.NewRequest(http.MethodPost, "/api/library/books",
		strings.NewReader(`{"isbn":"1","title":"T","author":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestOpenStoresRejectsUnknownDriver(t *testing.T) {
	_, err := openStores(context.Background(), config.Store{Driver: "mongo"}, discardLogger())
	assert.Error(t, err)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig(config.DriverMemory)
	cfg.Addr = "127.0.0.1:0"

	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMigrateCommandRejectsMemory(t *testing.T) {
	t.Setenv("STORE_DRIVER", config.DriverMemory)
	root := newRootCmd()
	root.SetArgs([]string{"migrate", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema to migrate")
}

func TestMigrateCommandSQLite(t *testing.T) {
	t.Setenv("STORE_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "library.db"))
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"migrate", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "migrated sqlite store")
}
