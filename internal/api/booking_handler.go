package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ivms/internal/apperr"
	"ivms/internal/entities"
	"ivms/internal/schedule"
)

type BookingService interface {
	SubmitBooking(ctx context.Context, req entities.BookingRequest) (*entities.BookingResponse, error)
	ListBookings(ctx context.Context) ([]entities.BookingResponse, error)
	AvailableSlots(ctx context.Context, floor, room, date string) ([]schedule.Interval, error)
	UpdateStatus(ctx context.Context, id string, req entities.StatusUpdateRequest) (*entities.BookingResponse, error)
	Calendar(ctx context.Context, month string, span int) ([]entities.CalendarMonth, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{service: svc}
}

func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, err := h.service.SubmitBooking(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	floor, room, date := q.Get("floor"), q.Get("room"), q.Get("date")

	fields := map[string]string{}
	if floor == "" {
		fields["floor"] = "is required"
	}
	if room == "" {
		fields["room"] = "is required"
	}
	if date == "" {
		fields["date"] = "is required"
	}
	if len(fields) > 0 {
		respondError(w, apperr.NewValidation(fields))
		return
	}

	slots, err := h.service.AvailableSlots(r.Context(), floor, room, date)
	if err != nil {
		respondError(w, err)
		return
	}
	if slots == nil {
		slots = []schedule.Interval{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"availableSlots": slots})
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req entities.StatusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	span := 1
	if raw := q.Get("span"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, apperr.NewFieldError("span", "must be a number"))
			return
		}
		span = parsed
	}

	months, err := h.service.Calendar(r.Context(), q.Get("month"), span)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, months)
}
