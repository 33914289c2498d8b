package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ivms/internal/db"
	"ivms/internal/entities"
	"ivms/internal/validate"
)

type CourierStore interface {
	CreateCourier(ctx context.Context, c *db.Courier) error
	ListCouriers(ctx context.Context) ([]db.Courier, error)
}

type CourierService struct {
	store CourierStore
}

func NewCourierService(store CourierStore) *CourierService {
	return &CourierService{store: store}
}

// RegisterCourier records an incoming delivery at the reception desk.
func (s *CourierService) RegisterCourier(ctx context.Context, req entities.CourierRequest) (*entities.CourierResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	courier := &db.Courier{
		ID:              uuid.NewString(),
		VisitorName:     strings.TrimSpace(req.Name),
		CourierName:     strings.TrimSpace(req.CourierName),
		CourierID:       strings.TrimSpace(req.CourierID),
		Phone:           req.Phone,
		PersonToDeliver: strings.TrimSpace(req.PersonToDeliver),
	}
	if err := s.store.CreateCourier(ctx, courier); err != nil {
		return nil, err
	}

	resp := entities.CourierResponseFrom(courier)
	return &resp, nil
}

// ListCouriers returns every courier entry, newest first.
func (s *CourierService) ListCouriers(ctx context.Context) ([]entities.CourierResponse, error) {
	couriers, err := s.store.ListCouriers(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.CourierResponse, 0, len(couriers))
	for i := range couriers {
		responses = append(responses, entities.CourierResponseFrom(&couriers[i]))
	}
	return responses, nil
}
