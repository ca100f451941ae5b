package http

import (
	"net/http"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/pkg/httpx"
)

// LogoutHandler handles POST /api/logout.
type LogoutHandler struct {
	AuthService *service.AuthService
	Secure      bool
}

// ServeHTTP handles POST /api/logout
//
//	@Summary		Administrator logout
//	@Description	Destroys the server-side session and expires the session cookie. Succeeds even when no session exists.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	"Session destroyed"
//	@Router			/api/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if token, ok := sessionToken(r); ok {
		h.AuthService.Logout(r.Context(), token, httpx.IPKeyExtractor(r))
	}

	clearSessionCookie(w, h.Secure)
	w.WriteHeader(http.StatusOK)
}
