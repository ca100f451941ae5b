package http

import (
	"errors"
	"net/http"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/pkg/httpx"
	"github.com/solclone/portal/pkg/slogx"
)

// AdminHandler handles GET /api/admin.
type AdminHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles GET /api/admin
//
//	@Summary		Current administrator
//	@Description	Returns the profile of the administrator owning the session cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	domain.AdminProfile	"Administrator profile"
//	@Failure		401	{object}	map[string]string	"Not authenticated"
//	@Router			/api/admin [get].
func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionToken(r)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	profile, err := h.AuthService.AdminBySession(r.Context(), token)
	if err != nil {
		if !errors.Is(err, service.ErrSessionExpired) {
			slogx.FromContext(r.Context()).Error("session lookup failed", "error", err)
		}
		httpx.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, profile)
}
