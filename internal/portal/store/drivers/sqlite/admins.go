package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/solclone/portal/internal/portal/domain"
)

type adminsRepo struct {
	q dbtx
}

const adminColumns = `id, username, password_hash, is_first_login, two_factor_enabled,
	two_factor_secret, last_login, failed_attempts, locked_until, created_at, updated_at`

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	return scanAdmin(row)
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = ?`, username)
	return scanAdmin(row)
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO admins (id, username, password_hash, is_first_login, two_factor_enabled, two_factor_secret)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.PasswordHash, a.IsFirstLogin, a.TwoFactorEnabled,
		mapOptionalString(a.TwoFactorSecret),
	)
	return mapConstraint(err)
}

func (r *adminsRepo) RecordLoginFailure(
	ctx context.Context,
	adminID string,
	failedAttempts int,
	lockedUntil *time.Time,
) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE admins
		 SET failed_attempts = ?, locked_until = COALESCE(?, locked_until), updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		failedAttempts, mapOptionalTime(lockedUntil), adminID)
	return err
}

func (r *adminsRepo) RecordLoginSuccess(ctx context.Context, adminID string, at time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE admins
		 SET failed_attempts = 0, last_login = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		at.UTC(), adminID)
	return err
}

func (r *adminsRepo) UpdatePasswordHash(ctx context.Context, adminID string, newHash string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE admins
		 SET password_hash = ?, is_first_login = 0, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		newHash, adminID)
	return err
}

func (r *adminsRepo) UpdateSecondFactorSecret(ctx context.Context, adminID string, secret string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE admins
		 SET two_factor_secret = ?, two_factor_enabled = 1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		secret, adminID)
	return err
}

func scanAdmin(row *sql.Row) (domain.Admin, error) {
	var (
		a           domain.Admin
		secret      sql.NullString
		lastLogin   sql.NullTime
		lockedUntil sql.NullTime
	)
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.IsFirstLogin,
		&a.TwoFactorEnabled,
		&secret,
		&lastLogin,
		&a.FailedAttempts,
		&lockedUntil,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}

	a.TwoFactorSecret = mapNullStringPtr(secret)
	a.LastLogin = mapNullTimePtr(lastLogin)
	a.LockedUntil = mapNullTimePtr(lockedUntil)
	return a, nil
}
