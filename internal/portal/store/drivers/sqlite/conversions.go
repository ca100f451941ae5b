package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/solclone/portal/internal/portal/domain"
)

type conversionsRepo struct {
	q dbtx
}

func (r *conversionsRepo) CreateConversionRequest(ctx context.Context, c domain.ConversionRequest) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO conversion_requests (id, user_id, points_amount, solana_amount, status)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.PointsAmount.String(), c.SolanaAmount.String(), c.Status)
	return mapConstraint(err)
}

func (r *conversionsRepo) ListByStatus(ctx context.Context, status string) ([]domain.ConversionRequest, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, points_amount, solana_amount, status, created_at, processed_at, processed_by
		 FROM conversion_requests WHERE status = ? ORDER BY created_at ASC, id ASC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ConversionRequest
	for rows.Next() {
		var (
			c           domain.ConversionRequest
			points      string
			solana      string
			processedAt sql.NullTime
			processedBy sql.NullString
		)
		err := rows.Scan(&c.ID, &c.UserID, &points, &solana, &c.Status,
			&c.CreatedAt, &processedAt, &processedBy)
		if err != nil {
			return nil, err
		}

		if c.PointsAmount, err = decimal.NewFromString(points); err != nil {
			return nil, fmt.Errorf("invalid points amount %q for request %s: %w", points, c.ID, err)
		}
		if c.SolanaAmount, err = decimal.NewFromString(solana); err != nil {
			return nil, fmt.Errorf("invalid solana amount %q for request %s: %w", solana, c.ID, err)
		}
		c.ProcessedAt = mapNullTimePtr(processedAt)
		c.ProcessedBy = mapNullStringPtr(processedBy)
		requests = append(requests, c)
	}
	return requests, rows.Err()
}

func (r *conversionsRepo) MarkProcessed(
	ctx context.Context,
	id string,
	status string,
	processedBy string,
	at time.Time,
) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE conversion_requests
		 SET status = ?, processed_at = ?, processed_by = ?
		 WHERE id = ?`,
		status, at.UTC(), processedBy, id)
	return err
}
