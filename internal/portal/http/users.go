package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solclone/portal/internal/portal/service"
	"github.com/solclone/portal/pkg/httpx"
	"github.com/solclone/portal/pkg/slogx"
)

// UsersHandler handles the public registration endpoints and the
// session-gated user listing.
type UsersHandler struct {
	RegistrationService *service.RegistrationService
}

type registerRequest struct {
	WalletAddress string `json:"walletAddress"`
	ReferredBy    string `json:"referredBy"`
}

// HandleRegister handles POST /api/users/register
//
//	@Summary		Register a wallet
//	@Description	Registers a wallet address, derives its referral code, and credits the referrer 100 referral points when referredBy resolves.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest		true	"Wallet address and optional referral code"
//	@Success		201		{object}	domain.Account		"Registered user with points balance"
//	@Failure		400		{object}	map[string]string	"Already registered or invalid body"
//	@Router			/api/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, false)
}

// HandleStoreReferral handles POST /api/store-referral
//
//	@Summary		Store a referral link visit
//	@Description	Registers a wallet that arrived through a referral link. Same uniqueness and credit rules as /api/users/register, but referredBy is required.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest		true	"Wallet address and referral code"
//	@Success		201		{object}	domain.Account		"Registered user with points balance"
//	@Failure		400		{object}	map[string]string	"Already registered or invalid body"
//	@Router			/api/store-referral [post].
func (h *UsersHandler) HandleStoreReferral(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, true)
}

func (h *UsersHandler) register(w http.ResponseWriter, r *http.Request, requireReferral bool) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.WalletAddress == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Wallet address is required")
		return
	}
	if requireReferral && req.ReferredBy == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Referral code is required")
		return
	}

	account, err := h.RegistrationService.Register(ctx, req.WalletAddress, req.ReferredBy)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyRegistered) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Wallet address already registered")
			return
		}
		if errors.Is(err, service.ErrReferralCodeTaken) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Referral code already in use")
			return
		}
		log.Error("registration failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, account)
}

// HandleMe handles GET /api/users/me
//
//	@Summary		Look up a wallet registration
//	@Description	Returns the user row and points balance for the wallet given in the query string.
//	@Tags			Users
//	@Produce		json
//	@Param			wallet	query		string				true	"Wallet address"
//	@Success		200		{object}	domain.Account		"User with points balance"
//	@Failure		400		{object}	map[string]string	"Missing wallet parameter"
//	@Failure		404		{object}	map[string]string	"Wallet not registered"
//	@Router			/api/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wallet := r.URL.Query().Get("wallet")
	if wallet == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Wallet address is required")
		return
	}

	account, err := h.RegistrationService.AccountByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "User not found")
			return
		}
		slogx.FromContext(ctx).Error("user lookup failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, account)
}

// HandleList handles GET /api/users
//
//	@Summary		List registered users
//	@Description	Returns every registered user ordered by registration time ascending, each with its points balance. Requires an administrator session.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		domain.Account		"Users with points balances"
//	@Failure		401	{object}	map[string]string	"Not authenticated"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.RegistrationService.ListAccounts(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("user listing failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accounts)
}
