package sqlite

import (
	"context"
	"database/sql"

	"github.com/solclone/portal/internal/portal/domain"
)

type activityLogsRepo struct {
	q dbtx
}

func (r *activityLogsRepo) CreateEntry(ctx context.Context, e domain.ActivityLogEntry) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO activity_logs (id, admin_id, action, ip_address, details)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.AdminID, e.Action, mapOptionalString(e.IPAddress), mapOptionalString(e.Details))
	return mapConstraint(err)
}

func (r *activityLogsRepo) ListRecent(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, admin_id, action, ip_address, timestamp, details
		 FROM activity_logs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityLogEntry
	for rows.Next() {
		var (
			e       domain.ActivityLogEntry
			ip      sql.NullString
			details sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.AdminID, &e.Action, &ip, &e.Timestamp, &details); err != nil {
			return nil, err
		}
		e.IPAddress = mapNullStringPtr(ip)
		e.Details = mapNullStringPtr(details)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
