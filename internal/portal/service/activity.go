package service

import (
	"context"

	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
	"github.com/solclone/portal/pkg/idx"
	"github.com/solclone/portal/pkg/slogx"
)

// ActivityService is the append-only audit sink for administrative actions.
type ActivityService struct {
	Store store.Store
}

// Record appends an audit entry. Failures are logged and swallowed: an audit
// write must never abort or roll back the action it describes.
func (s *ActivityService) Record(ctx context.Context, adminID, action, ipAddress, details string) {
	entry := domain.ActivityLogEntry{
		ID:      idx.New().String(),
		AdminID: adminID,
		Action:  action,
	}
	if ipAddress != "" {
		entry.IPAddress = &ipAddress
	}
	if details != "" {
		entry.Details = &details
	}

	if err := s.Store.ActivityLogs().CreateEntry(ctx, entry); err != nil {
		slogx.FromContext(ctx).Error("failed to record activity",
			"admin_id", adminID,
			"action", action,
			"error", err,
		)
	}
}

// Recent returns the newest audit entries, up to limit.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error) {
	return s.Store.ActivityLogs().ListRecent(ctx, limit)
}
