package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// StalePendingBookingIDs returns ids of Pending bookings whose date is
// already in the past.
func (r *JobRepository) StalePendingBookingIDs(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id FROM bookings WHERE status = 'Pending' AND booking_date < CURRENT_DATE`)
	if err != nil {
		return nil, fmt.Errorf("querying stale pending bookings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning booking id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RejectBookings marks the given bookings Rejected with the supplied reason.
// Only rows still Pending are touched, so a booking approved between the
// sweep's read and write is left alone.
func (r *JobRepository) RejectBookings(ctx context.Context, ids []string, reason string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'Rejected', rejection_reason = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status = 'Pending'`,
		reason, pq.Array(ids),
	)
	if err != nil {
		return 0, fmt.Errorf("rejecting stale bookings: %w", err)
	}
	return result.RowsAffected()
}
