package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/pkg/cryptox"
)

func TestLoginPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAdmin(t, st, "alice", "correct horse battery")
	auth := newAuthService(st)

	t.Run("unknown username rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody", "whatever", "", "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice", "wrong", "", "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("correct password establishes a session", func(t *testing.T) {
		result, err := auth.Login(ctx, "alice", "correct horse battery", "", "127.0.0.1")
		require.NoError(t, err)
		require.False(t, result.SecondFactorRequired)
		require.NotEmpty(t, result.SessionToken)
		require.Equal(t, "alice", result.Admin.Username)
		require.NotNil(t, result.Admin.LastLogin)

		profile, err := auth.AdminBySession(ctx, result.SessionToken)
		require.NoError(t, err)
		require.Equal(t, result.Admin.ID, profile.ID)
	})

	t.Run("success resets the failure counter", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice", "wrong", "", "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = auth.Login(ctx, "alice", "correct horse battery", "", "127.0.0.1")
		require.NoError(t, err)

		admin, err := st.Admins().GetAdminByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Zero(t, admin.FailedAttempts)
	})
}

func TestLoginLockout(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedAdmin(t, st, "bob", "a strong password")
	auth := newAuthService(st)

	for i := 0; i < maxFailedAttempts; i++ {
		_, err := auth.Login(ctx, "bob", "wrong", "", "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	t.Run("locked account rejects even correct credentials", func(t *testing.T) {
		_, err := auth.Login(ctx, "bob", "a strong password", "", "127.0.0.1")
		require.ErrorIs(t, err, ErrAccountLocked)
	})

	t.Run("lockout attempt does not grow the counter", func(t *testing.T) {
		stored, err := st.Admins().GetAdminByUsername(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, maxFailedAttempts, stored.FailedAttempts)
		require.NotNil(t, stored.LockedUntil)
		require.WithinDuration(t, time.Now().Add(lockoutDuration), *stored.LockedUntil, time.Minute)
	})

	t.Run("expired lockout allows login and resets state", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		require.NoError(t, st.Admins().RecordLoginFailure(ctx, admin.ID, maxFailedAttempts, &past))

		result, err := auth.Login(ctx, "bob", "a strong password", "", "127.0.0.1")
		require.NoError(t, err)
		require.NotEmpty(t, result.SessionToken)

		stored, err := st.Admins().GetAdminByUsername(ctx, "bob")
		require.NoError(t, err)
		require.Zero(t, stored.FailedAttempts)
	})
}

func TestLoginSecondFactor(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedAdmin(t, st, "carol", "another password")
	auth := newAuthService(st)

	enrollment, err := auth.EnrollSecondFactor(ctx, admin.ID, "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.OTPAuthURL, "otpauth://")

	t.Run("missing code requests the second factor", func(t *testing.T) {
		result, err := auth.Login(ctx, "carol", "another password", "", "127.0.0.1")
		require.NoError(t, err)
		require.True(t, result.SecondFactorRequired)
		require.Empty(t, result.SessionToken)
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "carol", "another password", "000000", "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidSecondFactor)
	})

	t.Run("valid code logs in", func(t *testing.T) {
		code, err := totp.GenerateCode(enrollment.Secret, time.Now())
		require.NoError(t, err)

		result, err := auth.Login(ctx, "carol", "another password", code, "127.0.0.1")
		require.NoError(t, err)
		require.False(t, result.SecondFactorRequired)
		require.NotEmpty(t, result.SessionToken)
	})

	t.Run("re-enrollment invalidates codes from the old secret", func(t *testing.T) {
		oldSecret := enrollment.Secret

		fresh, err := auth.EnrollSecondFactor(ctx, admin.ID, "127.0.0.1")
		require.NoError(t, err)
		require.NotEqual(t, oldSecret, fresh.Secret)

		staleCode, err := totp.GenerateCode(oldSecret, time.Now())
		require.NoError(t, err)
		_, err = auth.Login(ctx, "carol", "another password", staleCode, "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidSecondFactor)

		code, err := totp.GenerateCode(fresh.Secret, time.Now())
		require.NoError(t, err)
		_, err = auth.Login(ctx, "carol", "another password", code, "127.0.0.1")
		require.NoError(t, err)
	})
}

func TestLogoutDestroysSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAdmin(t, st, "dave", "yet another password")
	auth := newAuthService(st)

	result, err := auth.Login(ctx, "dave", "yet another password", "", "127.0.0.1")
	require.NoError(t, err)

	_, err = auth.AdminBySession(ctx, result.SessionToken)
	require.NoError(t, err)

	auth.Logout(ctx, result.SessionToken, "127.0.0.1")

	_, err = auth.AdminBySession(ctx, result.SessionToken)
	require.ErrorIs(t, err, ErrSessionExpired)

	// Logging out again is a no-op, never an error.
	auth.Logout(ctx, result.SessionToken, "127.0.0.1")
}

func TestExpiredSessionRejected(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAdmin(t, st, "erin", "some password")

	auth := newAuthService(st)

	result, err := auth.Login(ctx, "erin", "some password", "", "127.0.0.1")
	require.NoError(t, err)

	// Plant an already-expired session for the same admin.
	stale, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		TokenHash: cryptox.FingerprintToken(stale),
		AdminID:   result.Admin.ID,
		CreatedAt: time.Now().Add(-25 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	_, err = auth.AdminBySession(ctx, stale)
	require.ErrorIs(t, err, ErrSessionExpired)

	// The live session is unaffected.
	_, err = auth.AdminBySession(ctx, result.SessionToken)
	require.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedAdmin(t, st, "frank", "old password")
	auth := newAuthService(st)

	t.Run("wrong current password rejected", func(t *testing.T) {
		err := auth.ChangePassword(ctx, admin.ID, "not the password", "new password", "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("change takes effect and clears first-login", func(t *testing.T) {
		require.NoError(t, auth.ChangePassword(ctx, admin.ID, "old password", "new password", "127.0.0.1"))

		_, err := auth.Login(ctx, "frank", "old password", "", "127.0.0.1")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		result, err := auth.Login(ctx, "frank", "new password", "", "127.0.0.1")
		require.NoError(t, err)
		require.False(t, result.Admin.IsFirstLogin)
	})
}

func TestActivityLogRecordsAdminActions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAdmin(t, st, "grace", "audit password")
	auth := newAuthService(st)

	result, err := auth.Login(ctx, "grace", "audit password", "", "10.0.0.1")
	require.NoError(t, err)
	auth.Logout(ctx, result.SessionToken, "10.0.0.1")

	entries, err := auth.Activity.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, domain.ActionLogout, entries[0].Action)
	require.Equal(t, domain.ActionLogin, entries[1].Action)
	require.NotNil(t, entries[0].IPAddress)
	require.Equal(t, "10.0.0.1", *entries[0].IPAddress)
}

func TestActivityFailureDoesNotBlockLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedAdmin(t, st, "heidi", "resilient password")

	auth := newAuthService(st)
	auth.Activity = &ActivityService{Store: brokenActivityStore{st}}

	result, err := auth.Login(ctx, "heidi", "resilient password", "", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, result.SessionToken)
}

// brokenActivityStore fails every audit write.
type brokenActivityStore struct {
	store.Store
}

func (brokenActivityStore) ActivityLogs() store.ActivityLogs {
	return failingActivityLogs{}
}

type failingActivityLogs struct{}

func (failingActivityLogs) CreateEntry(context.Context, domain.ActivityLogEntry) error {
	return context.DeadlineExceeded
}

func (failingActivityLogs) ListRecent(context.Context, int) ([]domain.ActivityLogEntry, error) {
	return nil, context.DeadlineExceeded
}
