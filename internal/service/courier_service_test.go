package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ivms/internal/apperr"
	"ivms/internal/db"
	"ivms/internal/entities"
)

type fakeCourierStore struct {
	couriers []db.Courier
}

func (f *fakeCourierStore) CreateCourier(_ context.Context, c *db.Courier) error {
	c.Serial = int64(len(f.couriers) + 1)
	c.CreatedAt = time.Now()
	f.couriers = append(f.couriers, *c)
	return nil
}

func (f *fakeCourierStore) ListCouriers(_ context.Context) ([]db.Courier, error) {
	return f.couriers, nil
}

func TestRegisterCourier(t *testing.T) {
	store := &fakeCourierStore{}
	svc := NewCourierService(store)

	courier, err := svc.RegisterCourier(context.Background(), entities.CourierRequest{
		Name:            "Suresh",
		CourierName:     "BlueDart",
		CourierID:       "BD-4451",
		Phone:           "9876543210",
		PersonToDeliver: "Accounts Department",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, courier.ID)
	assert.Equal(t, int64(1), courier.SlNumber)
	assert.Equal(t, "BlueDart", courier.CourierName)

	couriers, err := svc.ListCouriers(context.Background())
	require.NoError(t, err)
	assert.Len(t, couriers, 1)
}

func TestRegisterCourierValidation(t *testing.T) {
	svc := NewCourierService(&fakeCourierStore{})

	_, err := svc.RegisterCourier(context.Background(), entities.CourierRequest{
		Name:  "Suresh",
		Phone: "12",
	})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "couriername")
	assert.Contains(t, verr.Fields, "courierid")
	assert.Contains(t, verr.Fields, "phone")
	assert.Contains(t, verr.Fields, "persontodeliver")
}
