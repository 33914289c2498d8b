package api

import (
	"context"
	"net/http"

	"ivms/internal/entities"
)

type UserService interface {
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.UserResponse, error)
	Login(ctx context.Context, req entities.LoginRequest) (*entities.LoginResponse, error)
	ListUsers(ctx context.Context) ([]entities.UserResponse, error)
	DeleteUsers(ctx context.Context, req entities.DeleteUsersRequest) (int64, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{service: svc}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) DeleteUsers(w http.ResponseWriter, r *http.Request) {
	var req entities.DeleteUsersRequest
	if !decodeBody(w, r, &req) {
		return
	}

	deleted, err := h.service.DeleteUsers(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
