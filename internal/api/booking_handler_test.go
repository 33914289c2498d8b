package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ivms/internal/apperr"
	"ivms/internal/entities"
	"ivms/internal/schedule"
)

type stubBookingService struct {
	submit       func(entities.BookingRequest) (*entities.BookingResponse, error)
	list         func() ([]entities.BookingResponse, error)
	slots        func(floor, room, date string) ([]schedule.Interval, error)
	updateStatus func(id string, req entities.StatusUpdateRequest) (*entities.BookingResponse, error)
	calendar     func(month string, span int) ([]entities.CalendarMonth, error)
}

func (s *stubBookingService) SubmitBooking(_ context.Context, req entities.BookingRequest) (*entities.BookingResponse, error) {
	return s.submit(req)
}

func (s *stubBookingService) ListBookings(_ context.Context) ([]entities.BookingResponse, error) {
	return s.list()
}

func (s *stubBookingService) AvailableSlots(_ context.Context, floor, room, date string) ([]schedule.Interval, error) {
	return s.slots(floor, room, date)
}

func (s *stubBookingService) UpdateStatus(_ context.Context, id string, req entities.StatusUpdateRequest) (*entities.BookingResponse, error) {
	return s.updateStatus(id, req)
}

func (s *stubBookingService) Calendar(_ context.Context, month string, span int) ([]entities.CalendarMonth, error) {
	return s.calendar(month, span)
}

func interval(t *testing.T, start, end string) schedule.Interval {
	t.Helper()
	s, err := schedule.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := schedule.ParseTimeOfDay(end)
	require.NoError(t, err)
	return schedule.Interval{Start: s, End: e}
}

func TestSubmitBookingCreated(t *testing.T) {
	svc := &stubBookingService{
		submit: func(req entities.BookingRequest) (*entities.BookingResponse, error) {
			return &entities.BookingResponse{
				ID:        "b-1",
				Name:      req.Name,
				Status:    schedule.StatusPending,
				TimeRange: "09:00 - 10:00",
			}, nil
		},
	}
	handler := NewBookingHandler(svc)

	body := `{"name":"Asha","email":"asha@example.com","date":"2026-09-10","startTime":"09:00","endTime":"10:00","purpose":"review","floor":"3","room":"Main Conference Hall"}`
	req := httptest.NewRequest(http.MethodPost, "/api/hallbooking/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SubmitBooking(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp entities.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, schedule.StatusPending, resp.Status)
}

func TestSubmitBookingConflictPayload(t *testing.T) {
	svc := &stubBookingService{
		submit: func(entities.BookingRequest) (*entities.BookingResponse, error) {
			return nil, apperr.NewConflict("Main Conference Hall (floor 3) is not available", []schedule.Interval{
				interval(t, "11:00", "18:00"),
			})
		},
	}
	handler := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/hallbooking/submit", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.SubmitBooking(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var payload struct {
		Error          string `json:"error"`
		AvailableSlots []struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"availableSlots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload.Error, "not available")
	require.Len(t, payload.AvailableSlots, 1)
	assert.Equal(t, "11:00", payload.AvailableSlots[0].Start)
	assert.Equal(t, "18:00", payload.AvailableSlots[0].End)
}

func TestSubmitBookingValidationPayload(t *testing.T) {
	svc := &stubBookingService{
		submit: func(entities.BookingRequest) (*entities.BookingResponse, error) {
			return nil, apperr.NewFieldError("email", "must be a valid email address")
		},
	}
	handler := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/hallbooking/submit", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.SubmitBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var payload struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "must be a valid email address", payload.Fields["email"])
}

func TestSubmitBookingBadBody(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/hallbooking/submit", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.SubmitBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusRoutesID(t *testing.T) {
	var gotID string
	svc := &stubBookingService{
		updateStatus: func(id string, req entities.StatusUpdateRequest) (*entities.BookingResponse, error) {
			gotID = id
			return &entities.BookingResponse{ID: id, Status: schedule.StatusApproved}, nil
		},
	}
	handler := NewBookingHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/hallbooking/{id}/status", handler.UpdateStatus).Methods("PUT")

	req := httptest.NewRequest(http.MethodPut, "/api/hallbooking/b-42/status", strings.NewReader(`{"status":"Approved"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-42", gotID)
}

func TestUpdateStatusTerminalConflict(t *testing.T) {
	svc := &stubBookingService{
		updateStatus: func(string, entities.StatusUpdateRequest) (*entities.BookingResponse, error) {
			return nil, apperr.NewInvalidState(schedule.StatusApproved)
		},
	}
	handler := NewBookingHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/hallbooking/{id}/status", handler.UpdateStatus).Methods("PUT")

	req := httptest.NewRequest(http.MethodPut, "/api/hallbooking/b-42/status", strings.NewReader(`{"status":"Rejected","reason":"x"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already approved")
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc := &stubBookingService{
		updateStatus: func(string, entities.StatusUpdateRequest) (*entities.BookingResponse, error) {
			return nil, apperr.NewNotFound("booking", "b-404")
		},
	}
	handler := NewBookingHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/hallbooking/{id}/status", handler.UpdateStatus).Methods("PUT")

	req := httptest.NewRequest(http.MethodPut, "/api/hallbooking/b-404/status", strings.NewReader(`{"status":"Approved"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailableSlotsRequiresParams(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/hallbooking/slots?floor=3", nil)
	rec := httptest.NewRecorder()

	handler.AvailableSlots(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var payload struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload.Fields, "room")
	assert.Contains(t, payload.Fields, "date")
	assert.NotContains(t, payload.Fields, "floor")
}

func TestAvailableSlots(t *testing.T) {
	svc := &stubBookingService{
		slots: func(floor, room, date string) ([]schedule.Interval, error) {
			return []schedule.Interval{interval(t, "09:00", "18:00")}, nil
		},
	}
	handler := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/hallbooking/slots?floor=3&room=Main+Conference+Hall&date=2026-09-10", nil)
	rec := httptest.NewRecorder()

	handler.AvailableSlots(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"availableSlots":[{"start":"09:00","end":"18:00"}]}`, rec.Body.String())
}

func TestCalendarPassesParams(t *testing.T) {
	var gotMonth string
	var gotSpan int
	svc := &stubBookingService{
		calendar: func(month string, span int) ([]entities.CalendarMonth, error) {
			gotMonth, gotSpan = month, span
			return []entities.CalendarMonth{}, nil
		},
	}
	handler := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/hallbooking/calendar?month=2026-09&span=3", nil)
	rec := httptest.NewRecorder()

	handler.Calendar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-09", gotMonth)
	assert.Equal(t, 3, gotSpan)
}

func TestCalendarRejectsNonNumericSpan(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/hallbooking/calendar?span=three", nil)
	rec := httptest.NewRecorder()

	handler.Calendar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookingsEndpoint(t *testing.T) {
	svc := &stubBookingService{
		list: func() ([]entities.BookingResponse, error) {
			return []entities.BookingResponse{{ID: "b-1"}, {ID: "b-2"}}, nil
		},
	}
	handler := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/hallbooking/all", nil)
	rec := httptest.NewRecorder()

	handler.ListBookings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []entities.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
