package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/pkg/httpx"
	"github.com/solclone/portal/pkg/slogx"
)

// SessionCookieName is the cookie that carries the opaque session token.
const SessionCookieName = "portal_session"

// sessionToken extracts the raw session token from the request cookie.
func sessionToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// setSessionCookie writes the session cookie. Secure is only set for
// production deployments so local development over plain HTTP still works.
func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie client-side.
func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddleware resolves the session cookie to an administrator and
// injects the admin ID into the request context. Requests without a valid,
// unexpired session are rejected with 401.
func SessionMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := sessionToken(r)
			if !ok {
				httpx.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			profile, err := auth.AdminBySession(r.Context(), token)
			if err != nil {
				if !errors.Is(err, service.ErrSessionExpired) {
					slogx.FromContext(r.Context()).Error("session lookup failed", "error", err)
				}
				httpx.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			next.ServeHTTP(w, r.WithContext(
				httpx.ContextWithAdminID(r.Context(), profile.ID),
			))
		})
	}
}
