package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/solclone/portal/internal/portal/domain"
)

type verificationsRepo struct {
	q dbtx
}

func (r *verificationsRepo) CreateVerification(ctx context.Context, v domain.WalletVerification) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO wallet_verifications (id, user_id, clone_balance)
		 VALUES (?, ?, ?)`,
		v.ID, v.UserID, v.CloneBalance.String())
	return mapConstraint(err)
}

func (r *verificationsRepo) LatestForUser(ctx context.Context, userID string) (domain.WalletVerification, error) {
	var (
		v       domain.WalletVerification
		balance string
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT id, user_id, clone_balance, timestamp
		 FROM wallet_verifications WHERE user_id = ?
		 ORDER BY timestamp DESC, id DESC LIMIT 1`,
		userID,
	).Scan(&v.ID, &v.UserID, &balance, &v.Timestamp)
	if err != nil {
		return domain.WalletVerification{}, mapNotFound(err)
	}

	v.CloneBalance, err = decimal.NewFromString(balance)
	if err != nil {
		return domain.WalletVerification{}, fmt.Errorf("invalid balance %q for verification %s: %w", balance, v.ID, err)
	}
	return v, nil
}
