package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
)

func TestHousekeepingDeletesExpiredSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedAdmin(t, st, "janitor", "sweep password")

	now := time.Now()
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		TokenHash: "expired", AdminID: admin.ID,
		CreatedAt: now.Add(-25 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		TokenHash: "live", AdminID: admin.ID,
		CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := NewHousekeepingService(st, logger, time.Hour)

	// Start runs one cleanup immediately; Stop waits for it.
	hk.Start()
	hk.Stop()

	_, err := st.Sessions().GetSessionByTokenHash(ctx, "live")
	require.NoError(t, err)

	_, err = st.Sessions().GetSessionByTokenHash(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHousekeepingDefaultInterval(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := NewHousekeepingService(nil, logger, 0)
	require.Equal(t, time.Hour, hk.Interval)
}
