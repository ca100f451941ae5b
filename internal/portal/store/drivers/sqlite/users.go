package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/solclone/portal/internal/portal/domain"
)

type usersRepo struct {
	q dbtx
}

const userColumns = `id, wallet_address, telegram_id, referral_code, referred_by, last_verification, created_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (id, wallet_address, telegram_id, referral_code, referred_by)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.WalletAddress, mapOptionalString(u.TelegramID), u.ReferralCode,
		mapOptionalString(u.ReferredBy),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByWallet(ctx context.Context, walletAddress string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE wallet_address = ?`, walletAddress)
	return scanUser(row)
}

func (r *usersRepo) GetUserByReferralCode(ctx context.Context, code string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE referral_code = ?`, code)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) UpdateLastVerification(ctx context.Context, userID string, at time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET last_verification = ? WHERE id = ?`, at.UTC(), userID)
	return err
}

func (r *usersRepo) UpdateTelegramID(ctx context.Context, userID string, telegramID string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET telegram_id = ? WHERE id = ?`, telegramID, userID)
	return mapConstraint(err)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u                domain.User
		telegramID       sql.NullString
		referredBy       sql.NullString
		lastVerification sql.NullTime
	)
	err := row.Scan(
		&u.ID,
		&u.WalletAddress,
		&telegramID,
		&u.ReferralCode,
		&referredBy,
		&lastVerification,
		&u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.TelegramID = mapNullStringPtr(telegramID)
	u.ReferredBy = mapNullStringPtr(referredBy)
	u.LastVerification = mapNullTimePtr(lastVerification)
	return u, nil
}

func scanUserRows(rows *sql.Rows) (domain.User, error) {
	var (
		u                domain.User
		telegramID       sql.NullString
		referredBy       sql.NullString
		lastVerification sql.NullTime
	)
	err := rows.Scan(
		&u.ID,
		&u.WalletAddress,
		&telegramID,
		&u.ReferralCode,
		&referredBy,
		&lastVerification,
		&u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.TelegramID = mapNullStringPtr(telegramID)
	u.ReferredBy = mapNullStringPtr(referredBy)
	u.LastVerification = mapNullTimePtr(lastVerification)
	return u, nil
}
