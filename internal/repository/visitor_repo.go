package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ivms/internal/db"
)

const visitorColumns = `
	id, serial_no, name, address, designation, phone, email,
	person_to_meet, purpose, photo, pincode, device, created_at`

type VisitorRepository struct {
	DB *sql.DB
}

func NewVisitorRepository(database *sql.DB) *VisitorRepository {
	return &VisitorRepository{DB: database}
}

func (r *VisitorRepository) CreateVisitor(ctx context.Context, v *db.Visitor) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO visitors (id, name, address, designation, phone, email, person_to_meet, purpose, photo, pincode, device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING serial_no, created_at`,
		v.ID, v.Name, v.Address, v.Designation, v.Phone, v.Email,
		v.PersonToMeet, v.Purpose, v.Photo, v.Pincode, v.Device,
	).Scan(&v.Serial, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting visitor: %w", err)
	}
	return nil
}

// ListVisitors returns all visitors, newest first.
func (r *VisitorRepository) ListVisitors(ctx context.Context) ([]db.Visitor, error) {
	query := fmt.Sprintf(`SELECT %s FROM visitors ORDER BY created_at DESC`, visitorColumns)
	return r.queryVisitors(ctx, query)
}

// SearchVisitors matches the query case-insensitively against name, phone
// and email; the registration form uses it to prefill returning visitors.
func (r *VisitorRepository) SearchVisitors(ctx context.Context, query string) ([]db.Visitor, error) {
	pattern := "%" + query + "%"
	q := fmt.Sprintf(`
		SELECT %s
		FROM visitors
		WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		ORDER BY created_at DESC`, visitorColumns)
	return r.queryVisitors(ctx, q, pattern)
}

func (r *VisitorRepository) queryVisitors(ctx context.Context, query string, args ...any) ([]db.Visitor, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying visitors: %w", err)
	}
	defer rows.Close()

	var visitors []db.Visitor
	for rows.Next() {
		var v db.Visitor
		if err := rows.Scan(
			&v.ID, &v.Serial, &v.Name, &v.Address, &v.Designation, &v.Phone,
			&v.Email, &v.PersonToMeet, &v.Purpose, &v.Photo, &v.Pincode,
			&v.Device, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
