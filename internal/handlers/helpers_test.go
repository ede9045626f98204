package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/dra200/exwork/internal/middleware"
	"github.com/dra200/exwork/internal/routes"
	"github.com/dra200/exwork/internal/store"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "secret123"
)

// newTestApp builds a full application around a fresh seeded store so
// every test runs in isolation.
func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	st := store.New()
	require.NoError(t, st.Seed(testAdminUsername, testAdminPassword))

	sessions := middleware.NewSessionStore(time.Hour)
	app := fiber.New(fiber.Config{ErrorHandler: routes.ErrorHandler})
	routes.Register(app, st, sessions)
	return app, st
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// login authenticates and returns the session cookies to attach to
// subsequent requests.
func login(t *testing.T, app *fiber.App, username, password string) []*http.Cookie {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func loginAsAdmin(t *testing.T, app *fiber.App) []*http.Cookie {
	return login(t, app, testAdminUsername, testAdminPassword)
}
