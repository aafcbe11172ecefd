package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/example/velora/internal/config"
	"github.com/example/velora/internal/routes"
	"github.com/example/velora/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	cfg := &config.Config{
		AppPort:       "0",
		JWTSecret:     "test-secret",
		TokenExpires:  time.Hour,
		AdminPassword: "test-admin-password",
	}

	app := fiber.New()
	routes.Register(app, st, cfg)
	return app, st
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := performRequest(t, app, http.MethodPost, "/api/admin/login",
		map[string]string{"password": "test-admin-password"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func registerUser(t *testing.T, app *fiber.App, name, phone, password string) string {
	t.Helper()

	resp := performRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"phone":    phone,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
