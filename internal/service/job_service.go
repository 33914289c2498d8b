package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const staleRejectionReason = "Booking date passed without a decision"

type JobStore interface {
	StalePendingBookingIDs(ctx context.Context) ([]string, error)
	RejectBookings(ctx context.Context, ids []string, reason string) (int64, error)
}

// JobService hosts the scheduled maintenance sweeps.
type JobService struct {
	store JobStore
}

func NewJobService(store JobStore) *JobService {
	return &JobService{store: store}
}

// ExpireStalePendingBookings rejects Pending bookings whose date has
// passed. Run nightly from cron.
func (s *JobService) ExpireStalePendingBookings(ctx context.Context) error {
	ids, err := s.store.StalePendingBookingIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing stale pending bookings: %w", err)
	}
	if len(ids) == 0 {
		log.Debug().Msg("stale booking sweep: nothing to expire")
		return nil
	}

	count, err := s.store.RejectBookings(ctx, ids, staleRejectionReason)
	if err != nil {
		return fmt.Errorf("rejecting stale bookings: %w", err)
	}

	log.Info().Int64("count", count).Msg("stale booking sweep: expired pending bookings")
	return nil
}
