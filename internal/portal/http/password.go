package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/pkg/httpx"
	"github.com/solclone/portal/pkg/slogx"
)

// ChangePasswordHandler handles POST /api/change-password.
type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ServeHTTP handles POST /api/change-password
//
//	@Summary		Change administrator password
//	@Description	Verifies the current password, replaces it, and clears the first-login flag.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		changePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	map[string]string		"Password changed"
//	@Failure		400		{object}	map[string]string		"Current password incorrect or invalid body"
//	@Failure		401		{object}	map[string]string		"Not authenticated"
//	@Router			/api/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	adminID, ok := httpx.AdminIDFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Current and new password are required")
		return
	}

	err := h.AuthService.ChangePassword(ctx, adminID, req.CurrentPassword, req.NewPassword, httpx.IPKeyExtractor(r))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		log.Error("password change failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Password changed successfully")
}
