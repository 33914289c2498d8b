package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"ivms/internal/apperr"
	"ivms/internal/db"
	"ivms/internal/schedule"
)

const bookingColumns = `
	b.id, b.room_id, r.name, r.floor, b.name, b.email, b.booking_date,
	b.start_time, b.end_time, b.purpose, b.status, b.rejection_reason,
	b.created_at, b.updated_at`

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// GetRoom resolves a floor/room pair against the seeded catalog.
// Returns nil without error when the pair does not exist.
func (r *BookingRepository) GetRoom(ctx context.Context, floor, name string) (*db.Room, error) {
	var room db.Room
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, floor, name FROM rooms WHERE floor = $1 AND name = $2`,
		floor, name,
	).Scan(&room.ID, &room.Floor, &room.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying room: %w", err)
	}
	return &room, nil
}

// CreateBooking atomically checks the candidate slot against every
// slot-holding booking of the same room and date and inserts it when free.
// The room row is locked for the duration of the transaction so two
// concurrent submissions for the same room serialize; the table's exclusion
// constraint is the backstop. On conflict it reports the intervals already
// booked so the caller can compute alternatives.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *db.Booking) (conflict bool, booked []schedule.Interval, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var roomID int
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, booking.RoomID,
	).Scan(&roomID); err != nil {
		return false, nil, fmt.Errorf("locking room %d: %w", booking.RoomID, err)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2 AND status IN ('Pending', 'Approved')`,
		booking.RoomID, booking.Date,
	)
	if err != nil {
		return false, nil, fmt.Errorf("querying booked slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return false, nil, fmt.Errorf("scanning booked slot: %w", err)
		}
		booked = append(booked, iv)
	}
	if err := rows.Err(); err != nil {
		return false, nil, fmt.Errorf("iterating booked slots: %w", err)
	}

	if schedule.AnyOverlap(booking.Interval(), booked) {
		return true, booked, nil
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO bookings (id, room_id, name, email, booking_date, start_time, end_time, purpose, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		booking.ID, booking.RoomID, booking.Name, booking.Email, booking.Date,
		booking.StartTime, booking.EndTime, booking.Purpose, booking.Status,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "exclusion_violation" {
			// A concurrent insert won the slot after our in-transaction
			// read, so the intervals read above are stale. Re-read outside
			// the aborted transaction so the conflict response does not
			// offer the slot that was just taken.
			booked, err = r.BookedIntervals(ctx, booking.RoomID, booking.Date)
			if err != nil {
				return false, nil, fmt.Errorf("re-reading booked slots after conflict: %w", err)
			}
			return true, booked, nil
		}
		return false, nil, fmt.Errorf("inserting booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, nil, fmt.Errorf("committing booking: %w", err)
	}
	return false, nil, nil
}

// BookedIntervals returns the slot-holding intervals for a room and date.
func (r *BookingRepository) BookedIntervals(ctx context.Context, roomID int, date time.Time) ([]schedule.Interval, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2 AND status IN ('Pending', 'Approved')
		ORDER BY start_time`,
		roomID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("querying booked slots: %w", err)
	}
	defer rows.Close()

	var booked []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("scanning booked slot: %w", err)
		}
		booked = append(booked, iv)
	}
	return booked, rows.Err()
}

// ListBookings returns every booking, newest submission first.
func (r *BookingRepository) ListBookings(ctx context.Context) ([]db.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		ORDER BY b.created_at DESC`, bookingColumns)

	return r.queryBookings(ctx, query)
}

// ListBookingsBetween returns bookings with dates in [from, to), ordered by
// date then start time; the calendar view buckets these by month.
func (r *BookingRepository) ListBookingsBetween(ctx context.Context, from, to time.Time) ([]db.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.booking_date >= $1 AND b.booking_date < $2
		ORDER BY b.booking_date, b.start_time`, bookingColumns)

	return r.queryBookings(ctx, query, from, to)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]db.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := rows.Scan(
			&b.ID, &b.RoomID, &b.Room, &b.Floor, &b.Name, &b.Email, &b.Date,
			&b.StartTime, &b.EndTime, &b.Purpose, &b.Status, &b.RejectionReason,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetBooking loads one booking by id.
func (r *BookingRepository) GetBooking(ctx context.Context, id string) (*db.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`, bookingColumns)

	var b db.Booking
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.RoomID, &b.Room, &b.Floor, &b.Name, &b.Email, &b.Date,
		&b.StartTime, &b.EndTime, &b.Purpose, &b.Status, &b.RejectionReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("booking", id)
		}
		return nil, fmt.Errorf("querying booking: %w", err)
	}
	return &b, nil
}

// UpdateStatus transitions a Pending booking to Approved or Rejected. The
// row is locked first so concurrent decisions on the same booking serialize;
// a booking already in a terminal state is never touched.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status schedule.Status, reason string) (*db.Booking, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current schedule.Status
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("booking", id)
		}
		return nil, fmt.Errorf("locking booking: %w", err)
	}
	if current.Terminal() {
		return nil, apperr.NewInvalidState(current)
	}

	rejectionReason := sql.NullString{String: reason, Valid: status == schedule.StatusRejected}

	query := fmt.Sprintf(`
		UPDATE bookings b
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		FROM rooms r
		WHERE b.id = $1 AND r.id = b.room_id
		RETURNING %s`, bookingColumns)

	var b db.Booking
	err = tx.QueryRowContext(ctx, query, id, status, rejectionReason).Scan(
		&b.ID, &b.RoomID, &b.Room, &b.Floor, &b.Name, &b.Email, &b.Date,
		&b.StartTime, &b.EndTime, &b.Purpose, &b.Status, &b.RejectionReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("updating booking status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing status update: %w", err)
	}
	return &b, nil
}
