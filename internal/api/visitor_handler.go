package api

import (
	"context"
	"net/http"

	"ivms/internal/entities"
)

type VisitorService interface {
	RegisterVisitor(ctx context.Context, req entities.VisitorRequest) (*entities.VisitorResponse, error)
	ListVisitors(ctx context.Context) ([]entities.VisitorResponse, error)
	SearchVisitors(ctx context.Context, query string) ([]entities.VisitorResponse, error)
}

type VisitorHandler struct {
	service VisitorService
}

func NewVisitorHandler(svc VisitorService) *VisitorHandler {
	return &VisitorHandler{service: svc}
}

func (h *VisitorHandler) RegisterVisitor(w http.ResponseWriter, r *http.Request) {
	var req entities.VisitorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	visitor, err := h.service.RegisterVisitor(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, visitor)
}

func (h *VisitorHandler) ListVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.service.ListVisitors(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, visitors)
}

func (h *VisitorHandler) SearchVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.service.SearchVisitors(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, visitors)
}
