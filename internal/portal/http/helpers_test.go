package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/internal/portal/store/drivers/sqlite"
)

type testEnv struct {
	router *Router
	store  store.Store
	auth   *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := &service.AuthService{
		Store:    st,
		Activity: &service.ActivityService{Store: st},
		Issuer:   "portal-test",
	}

	router := NewRouter("test", 24*time.Hour, false, st, logger)
	router.AuthService = auth
	router.RegistrationService = &service.RegistrationService{Store: st}
	router.ApplyRoutes()

	return &testEnv{router: router, store: st, auth: auth}
}

func (e *testEnv) seedAdmin(t *testing.T, username, password string) {
	t.Helper()

	boot := &service.BootstrapService{
		Store: e.store,
		Seeds: []service.SeedAdmin{{Username: username, Password: password}},
	}
	require.NoError(t, boot.Run(context.Background()))
}

// do executes a request against the router. A non-empty cookie is attached as
// the session cookie, and bodies are JSON-encoded.
func (e *testEnv) do(t *testing.T, method, target, cookie string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
