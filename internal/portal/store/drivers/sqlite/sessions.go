package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/solclone/portal/internal/portal/domain"
	"github.com/solclone/portal/internal/portal/store"
)

type sessionsRepo struct {
	q dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO sessions (token_hash, admin_id, created_at, expires_at)
		 VALUES (?, ?, ?, ?)`,
		s.TokenHash, s.AdminID, s.CreatedAt.UTC(), s.ExpiresAt.UTC())
	return mapConstraint(err)
}

// GetSessionByTokenHash treats expired rows as not found, so expiry and
// logout look identical to callers. Expiry is evaluated in Go to stay
// independent of the driver's timestamp text format.
func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error) {
	var s domain.Session
	err := r.q.QueryRowContext(ctx,
		`SELECT token_hash, admin_id, created_at, expires_at
		 FROM sessions WHERE token_hash = ?`,
		tokenHash,
	).Scan(&s.TokenHash, &s.AdminID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, store.ErrNotFound
		}
		return domain.Session{}, err
	}

	if s.Expired(time.Now()) {
		return domain.Session{}, store.ErrNotFound
	}
	return s, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, tokenHash string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = ?`, tokenHash)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	// Both sides of the comparison are driver-bound time values, so the text
	// representations collate consistently.
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
