package entities

import (
	"fmt"
	"time"

	"ivms/internal/db"
	"ivms/internal/schedule"
)

// BookingRequest is the hall-booking submission body. Field names follow
// the booking form; unknown extras (client clock, serial counters) are
// ignored on decode.
type BookingRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Purpose   string `json:"purpose" validate:"required"`
	Floor     string `json:"floor" validate:"required"`
	Room      string `json:"room" validate:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Date            string          `json:"date"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time"`
	TimeRange       string          `json:"time_range"`
	Purpose         string          `json:"purpose"`
	Floor           string          `json:"floor"`
	Room            string          `json:"room"`
	Status          schedule.Status `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func BookingResponseFrom(b *db.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Date:      b.Date.Format("2006-01-02"),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		TimeRange: fmt.Sprintf("%s - %s", b.StartTime, b.EndTime),
		Purpose:   b.Purpose,
		Floor:     b.Floor,
		Room:      b.Room,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
	if b.RejectionReason.Valid {
		resp.RejectionReason = b.RejectionReason.String
	}
	return resp
}

// CalendarEvent is one booking as the calendar view renders it, with the
// status display color resolved server side.
type CalendarEvent struct {
	ID        string          `json:"id"`
	Room      string          `json:"room"`
	Floor     string          `json:"floor"`
	Date      string          `json:"date"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Name      string          `json:"name"`
	Purpose   string          `json:"purpose"`
	Status    schedule.Status `json:"status"`
	Color     string          `json:"color"`
}

// CalendarMonth buckets one month of bookings; Counts always carries all
// three statuses, zeroes included.
type CalendarMonth struct {
	Month  string                  `json:"month"`
	Events []CalendarEvent         `json:"events"`
	Counts map[schedule.Status]int `json:"counts"`
}
