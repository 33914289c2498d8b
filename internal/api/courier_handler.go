package api

import (
	"context"
	"net/http"

	"ivms/internal/entities"
)

type CourierService interface {
	RegisterCourier(ctx context.Context, req entities.CourierRequest) (*entities.CourierResponse, error)
	ListCouriers(ctx context.Context) ([]entities.CourierResponse, error)
}

type CourierHandler struct {
	service CourierService
}

func NewCourierHandler(svc CourierService) *CourierHandler {
	return &CourierHandler{service: svc}
}

func (h *CourierHandler) RegisterCourier(w http.ResponseWriter, r *http.Request) {
	var req entities.CourierRequest
	if !decodeBody(w, r, &req) {
		return
	}

	courier, err := h.service.RegisterCourier(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, courier)
}

func (h *CourierHandler) ListCouriers(w http.ResponseWriter, r *http.Request) {
	couriers, err := h.service.ListCouriers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, couriers)
}
