package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ivms/internal/apperr"
	"ivms/internal/db"
	"ivms/internal/entities"
	"ivms/internal/validate"
)

type VisitorStore interface {
	CreateVisitor(ctx context.Context, v *db.Visitor) error
	ListVisitors(ctx context.Context) ([]db.Visitor, error)
	SearchVisitors(ctx context.Context, query string) ([]db.Visitor, error)
}

type welcomeSender interface {
	SendVisitorWelcomeSMS(visitor entities.VisitorResponse)
}

type VisitorService struct {
	store  VisitorStore
	sender welcomeSender
}

func NewVisitorService(store VisitorStore, sender welcomeSender) *VisitorService {
	return &VisitorService{store: store, sender: sender}
}

// RegisterVisitor records a walk-in visitor and texts them their entry
// number.
func (s *VisitorService) RegisterVisitor(ctx context.Context, req entities.VisitorRequest) (*entities.VisitorResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	visitor := &db.Visitor{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Address:      strings.TrimSpace(req.Address),
		Designation:  strings.TrimSpace(req.Designation),
		Phone:        req.Phone,
		Email:        req.Email,
		PersonToMeet: strings.TrimSpace(req.PersonToMeet),
		Purpose:      strings.TrimSpace(req.Purpose),
		Photo:        req.Photo,
		Pincode:      req.Pincode,
		Device:       strings.TrimSpace(req.Device),
	}
	if err := s.store.CreateVisitor(ctx, visitor); err != nil {
		return nil, err
	}

	resp := entities.VisitorResponseFrom(visitor)
	if s.sender != nil {
		s.sender.SendVisitorWelcomeSMS(resp)
	}
	return &resp, nil
}

// ListVisitors returns every visitor entry, newest first.
func (s *VisitorService) ListVisitors(ctx context.Context) ([]entities.VisitorResponse, error) {
	visitors, err := s.store.ListVisitors(ctx)
	if err != nil {
		return nil, err
	}
	return visitorResponses(visitors), nil
}

// SearchVisitors matches name, phone or email against the query.
func (s *VisitorService) SearchVisitors(ctx context.Context, query string) ([]entities.VisitorResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.NewFieldError("query", "search query must not be empty")
	}
	visitors, err := s.store.SearchVisitors(ctx, query)
	if err != nil {
		return nil, err
	}
	return visitorResponses(visitors), nil
}

func visitorResponses(visitors []db.Visitor) []entities.VisitorResponse {
	responses := make([]entities.VisitorResponse, 0, len(visitors))
	for i := range visitors {
		responses = append(responses, entities.VisitorResponseFrom(&visitors[i]))
	}
	return responses
}
