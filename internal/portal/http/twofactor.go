package http

import (
	"net/http"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/pkg/httpx"
	"github.com/solclone/portal/pkg/slogx"
)

// SetupTwoFactorHandler handles POST /api/setup-2fa.
type SetupTwoFactorHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /api/setup-2fa
//
//	@Summary		Enable TOTP second factor
//	@Description	Generates a fresh TOTP secret for the authenticated administrator and enables 2FA. Re-enrollment replaces the previous secret immediately.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	domain.SecondFactorEnrollment	"Secret and otpauth URL"
//	@Failure		401	{object}	map[string]string				"Not authenticated"
//	@Router			/api/setup-2fa [post].
func (h *SetupTwoFactorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := httpx.AdminIDFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	enrollment, err := h.AuthService.EnrollSecondFactor(ctx, adminID, httpx.IPKeyExtractor(r))
	if err != nil {
		slogx.FromContext(ctx).Error("2FA enrollment failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, enrollment)
}
