package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ivms/internal/db"
)

type CourierRepository struct {
	DB *sql.DB
}

func NewCourierRepository(database *sql.DB) *CourierRepository {
	return &CourierRepository{DB: database}
}

func (r *CourierRepository) CreateCourier(ctx context.Context, c *db.Courier) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO couriers (id, visitor_name, courier_name, courier_ref, phone, person_to_deliver)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING serial_no, created_at`,
		c.ID, c.VisitorName, c.CourierName, c.CourierID, c.Phone, c.PersonToDeliver,
	).Scan(&c.Serial, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting courier: %w", err)
	}
	return nil
}

// ListCouriers returns all courier entries, newest first.
func (r *CourierRepository) ListCouriers(ctx context.Context) ([]db.Courier, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, serial_no, visitor_name, courier_name, courier_ref, phone, person_to_deliver, created_at
		FROM couriers
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying couriers: %w", err)
	}
	defer rows.Close()

	var couriers []db.Courier
	for rows.Next() {
		var c db.Courier
		if err := rows.Scan(
			&c.ID, &c.Serial, &c.VisitorName, &c.CourierName, &c.CourierID,
			&c.Phone, &c.PersonToDeliver, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning courier: %w", err)
		}
		couriers = append(couriers, c)
	}
	return couriers, rows.Err()
}
