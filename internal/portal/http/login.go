package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/pkg/httpx"
	"github.com/solclone/portal/pkg/slogx"
)

// LoginHandler handles POST /api/login.
type LoginHandler struct {
	AuthService *service.AuthService
	SessionTTL  time.Duration
	Secure      bool
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPCode string `json:"totpCode"`
}

// ServeHTTP handles POST /api/login
//
//	@Summary		Administrator login
//	@Description	Validates username/password (plus a TOTP code when the account has a second factor) and establishes a server-side session delivered as an httpOnly cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest		true	"Credentials"
//	@Success		200		{object}	domain.AdminProfile	"Administrator profile"
//	@Failure		401		{object}	map[string]any		"Invalid credentials, locked account, or requires2FA flag"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	result, err := h.AuthService.Login(ctx, req.Username, req.Password, req.TOTPCode, httpx.IPKeyExtractor(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, service.ErrAccountLocked):
			httpx.WriteMessage(w, http.StatusUnauthorized, "Account is locked. Try again later")
		case errors.Is(err, service.ErrInvalidSecondFactor):
			httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid 2FA code")
		default:
			log.Error("login failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if result.SecondFactorRequired {
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{"requires2FA": true})
		return
	}

	setSessionCookie(w, result.SessionToken, h.SessionTTL, h.Secure)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, result.Admin)
}
