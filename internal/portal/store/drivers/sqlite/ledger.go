package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/solclone/portal/internal/portal/domain"
)

type ledgerRepo struct {
	q dbtx
}

func (r *ledgerRepo) CreateEntry(ctx context.Context, e domain.LedgerEntry) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO points_ledger (id, user_id, points, source) VALUES (?, ?, ?, ?)`,
		e.ID, e.UserID, e.Points.String(), e.Source)
	return mapConstraint(err)
}

func (r *ledgerRepo) ListEntriesForUser(ctx context.Context, userID string) ([]domain.LedgerEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, points, source, timestamp
		 FROM points_ledger WHERE user_id = ? ORDER BY timestamp ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var (
			e      domain.LedgerEntry
			points string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &points, &e.Source, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Points, err = decimal.NewFromString(points)
		if err != nil {
			return nil, fmt.Errorf("invalid points value %q for entry %s: %w", points, e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *ledgerRepo) TotalForUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	// Summed in Go rather than SQL so decimal semantics stay exact.
	entries, err := r.ListEntriesForUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Points)
	}
	return total, nil
}

func (r *ledgerRepo) TotalsByUser(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT user_id, points FROM points_ledger`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var userID, points string
		if err := rows.Scan(&userID, &points); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(points)
		if err != nil {
			return nil, fmt.Errorf("invalid points value %q for user %s: %w", points, userID, err)
		}
		totals[userID] = totals[userID].Add(d)
	}
	return totals, rows.Err()
}
