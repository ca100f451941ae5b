package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing wallet", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("register returns the account", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
			"walletAddress": "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var account map[string]any
		decodeJSON(t, rec, &account)
		require.Equal(t, "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", account["walletAddress"])
		require.Equal(t, "7XKXTG2C", account["referralCode"])
	})

	t.Run("duplicate wallet rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
			"walletAddress": "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		decodeJSON(t, rec, &body)
		require.Equal(t, "Wallet address already registered", body["message"])
	})

	t.Run("referral credits the referrer", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
			"walletAddress": "FriendWallet111111111111111111111111111111111",
			"referredBy":    "7XKXTG2C",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/users/me?wallet=7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var account map[string]any
		decodeJSON(t, rec, &account)
		require.Equal(t, "100", account["points"])
	})
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing query parameter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/users/me", "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unregistered wallet", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/users/me?wallet=UnknownWallet", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		decodeJSON(t, rec, &body)
		require.Equal(t, "User not found", body["message"])
	})

	t.Run("registered wallet", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
			"walletAddress": "MyWallet11111111111111111111111111111111111",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/users/me?wallet=MyWallet11111111111111111111111111111111111", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var account map[string]any
		decodeJSON(t, rec, &account)
		require.Equal(t, "MYWALLET", account["referralCode"])
		require.Equal(t, "0", account["points"])
	})
}

func TestStoreReferralEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"walletAddress": "ReferrerWalletRRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("referral code required", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/store-referral", "", map[string]string{
			"walletAddress": "VisitorWallet1111111111111111111111111111111",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stores the visit and credits the referrer", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/store-referral", "", map[string]string{
			"walletAddress": "VisitorWallet1111111111111111111111111111111",
			"referredBy":    "REFERRER",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/users/me?wallet=ReferrerWalletRRRRRRRRRRRRRRRRRRRRRRRRRRRRRR", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var account map[string]any
		decodeJSON(t, rec, &account)
		require.Equal(t, "100", account["points"])
	})

	t.Run("repeat visit rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/store-referral", "", map[string]string{
			"walletAddress": "VisitorWallet1111111111111111111111111111111",
			"referredBy":    "REFERRER",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsersEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "alice", "list password")

	for _, wallet := range []string{
		"WalletA1111111111111111111111111111111111111",
		"WalletB1111111111111111111111111111111111111",
		"WalletC1111111111111111111111111111111111111",
	} {
		rec := env.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
			"walletAddress": wallet,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("requires a session", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/users", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns users in registration order", func(t *testing.T) {
		token := env.login(t, "alice", "list password")

		rec := env.do(t, http.MethodGet, "/api/users", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var accounts []map[string]any
		decodeJSON(t, rec, &accounts)
		require.Len(t, accounts, 3)
		require.Equal(t, "WalletA1111111111111111111111111111111111111", accounts[0]["walletAddress"])
		require.Equal(t, "WalletB1111111111111111111111111111111111111", accounts[1]["walletAddress"])
		require.Equal(t, "WalletC1111111111111111111111111111111111111", accounts[2]["walletAddress"])
	})
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]any
	decodeJSON(t, rec, &health)
	require.Equal(t, "ok", health["status"])

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeJSON(t, rec, &health)
	require.Equal(t, "ok", health["database"])
}
