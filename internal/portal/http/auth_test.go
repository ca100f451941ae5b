package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "alice", "correct horse battery")

	t.Run("malformed body", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{"username": "alice"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "alice", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		decodeJSON(t, rec, &body)
		require.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("success sets the session cookie", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "alice", "password": "correct horse battery",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var profile map[string]any
		decodeJSON(t, rec, &profile)
		require.Equal(t, "alice", profile["username"])
		require.Equal(t, true, profile["isFirstLogin"])

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		require.Equal(t, SessionCookieName, cookie.Name)
		require.NotEmpty(t, cookie.Value)
		require.True(t, cookie.HttpOnly)
		require.False(t, cookie.Secure) // dev mode
		require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		require.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	})
}

func TestSessionFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "bob", "a strong password")

	t.Run("admin endpoint requires a session", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/admin", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/admin", "bogus-token", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	token := env.login(t, "bob", "a strong password")

	t.Run("session resolves the profile", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/admin", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var profile map[string]any
		decodeJSON(t, rec, &profile)
		require.Equal(t, "bob", profile["username"])
	})

	t.Run("logout clears the cookie and kills the session", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/logout", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, SessionCookieName, cookies[0].Name)
		require.Empty(t, cookies[0].Value)
		require.Negative(t, cookies[0].MaxAge)

		rec = env.do(t, http.MethodGet, "/api/admin", token, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("logout without a session still succeeds", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/logout", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoginSecondFactorEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "carol", "another password")

	token := env.login(t, "carol", "another password")

	rec := env.do(t, http.MethodPost, "/api/setup-2fa", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var enrollment map[string]string
	decodeJSON(t, rec, &enrollment)
	require.NotEmpty(t, enrollment["secret"])
	require.Contains(t, enrollment["otpauthUrl"], "otpauth://")

	t.Run("password alone now asks for the second factor", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "carol", "password": "another password",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]any
		decodeJSON(t, rec, &body)
		require.Equal(t, true, body["requires2FA"])
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "carol", "password": "another password", "totpCode": "000000",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		decodeJSON(t, rec, &body)
		require.Equal(t, "Invalid 2FA code", body["message"])
	})

	t.Run("valid code completes the login", func(t *testing.T) {
		code, err := totp.GenerateCode(enrollment["secret"], time.Now())
		require.NoError(t, err)

		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "carol", "password": "another password", "totpCode": code,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("setup without a session rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/setup-2fa", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestChangePasswordEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "dave", "old password")

	token := env.login(t, "dave", "old password")

	t.Run("wrong current password", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/change-password", token, map[string]string{
			"currentPassword": "not it", "newPassword": "new password",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		decodeJSON(t, rec, &body)
		require.Equal(t, "Current password is incorrect", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/change-password", token, map[string]string{
			"currentPassword": "old password",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("without a session", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/change-password", "", map[string]string{
			"currentPassword": "old password", "newPassword": "new password",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("successful change takes effect", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/change-password", token, map[string]string{
			"currentPassword": "old password", "newPassword": "new password",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		// Old credentials no longer work.
		rec = env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "dave", "password": "old password",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		profile, err := env.auth.AdminBySession(context.Background(), token)
		require.NoError(t, err)
		require.False(t, profile.IsFirstLogin)
	})
}
