package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harvestnet/platform/pkg/platformsdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	cfg := LoadConfig()
	cfg.DatabaseFile = filepath.Join(dir, "harvestnet.db")
	cfg.PepperFile = filepath.Join(dir, "pepper")
	cfg.JWTSecret = "app-test-secret-0123456789abcdef"
	cfg.LogLevel = "error"
	return cfg
}

func TestNewSeedsAndServes(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err, "pepper file is created on first start")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"farmer@harvestnet.com","password":"password123"}`))
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp platformsdk.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "farmer", resp.User.Role)
	require.Nil(t, app.housekeepingService)
}

func TestNewIsRestartSafe(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, first.db.Close())

	// Same database and pepper: seeds are not duplicated and still log in.
	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.db.Close() })

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@harvestnet.com","password":"password123"}`))
	rec := httptest.NewRecorder()
	second.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRejectsWeakSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = "short"

	_, err := New(cfg)
	require.Error(t, err)
}
