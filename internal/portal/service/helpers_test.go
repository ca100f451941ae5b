package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/internal/portal/store/drivers/sqlite"
	"github.com/solclone/portal/pkg/cryptox"
	"github.com/solclone/portal/pkg/idx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedAdmin(t *testing.T, st store.Store, username, password string) domain.Admin {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	admin := domain.Admin{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		IsFirstLogin: true,
	}
	require.NoError(t, st.Admins().CreateAdmin(context.Background(), admin))
	return admin
}

func mustAdminID(t *testing.T, st store.Store, username string) string {
	t.Helper()

	admin, err := st.Admins().GetAdminByUsername(context.Background(), username)
	require.NoError(t, err)
	return admin.ID
}

func newAuthService(st store.Store) *AuthService {
	return &AuthService{
		Store:    st,
		Activity: &ActivityService{Store: st},
		Issuer:   "portal-test",
	}
}
