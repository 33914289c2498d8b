package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ivms/internal/apperr"
	"ivms/internal/db"
	"ivms/internal/entities"
	"ivms/internal/schedule"
	"ivms/internal/validate"
)

const dateLayout = "2006-01-02"

// BookingStore is the persistence surface the booking service needs.
type BookingStore interface {
	GetRoom(ctx context.Context, floor, name string) (*db.Room, error)
	CreateBooking(ctx context.Context, booking *db.Booking) (conflict bool, booked []schedule.Interval, err error)
	BookedIntervals(ctx context.Context, roomID int, date time.Time) ([]schedule.Interval, error)
	ListBookings(ctx context.Context) ([]db.Booking, error)
	ListBookingsBetween(ctx context.Context, from, to time.Time) ([]db.Booking, error)
	UpdateStatus(ctx context.Context, id string, status schedule.Status, reason string) (*db.Booking, error)
}

type decisionSender interface {
	SendBookingDecisionEmail(booking entities.BookingResponse)
}

type BookingService struct {
	store   BookingStore
	sender  decisionSender
	workday schedule.Interval
	now     func() time.Time
}

func NewBookingService(store BookingStore, sender decisionSender, workday schedule.Interval) *BookingService {
	return &BookingService{
		store:   store,
		sender:  sender,
		workday: workday,
		now:     time.Now,
	}
}

// SubmitBooking validates the request, checks the candidate slot against
// existing bookings of the same room and date, and records it as Pending.
// On conflict it returns the remaining free intervals of the working day.
func (s *BookingService) SubmitBooking(ctx context.Context, req entities.BookingRequest) (*entities.BookingResponse, error) {
	fields := map[string]string{}
	if err := validate.Struct(req); err != nil {
		verr, ok := err.(*apperr.ValidationError)
		if !ok {
			return nil, err
		}
		for k, v := range verr.Fields {
			fields[k] = v
		}
	}

	var date time.Time
	if _, taken := fields["date"]; !taken {
		var err error
		date, err = time.Parse(dateLayout, req.Date)
		if err != nil {
			fields["date"] = "must be a valid date (YYYY-MM-DD)"
		} else if today := s.today(); date.Before(today) {
			fields["date"] = "must not be in the past"
		}
	}

	var start, end schedule.TimeOfDay
	if _, taken := fields["startTime"]; !taken {
		var err error
		start, err = schedule.ParseTimeOfDay(req.StartTime)
		if err != nil {
			fields["startTime"] = "must be a valid 24-hour time (HH:MM)"
		}
	}
	if _, taken := fields["endTime"]; !taken {
		var err error
		end, err = schedule.ParseTimeOfDay(req.EndTime)
		if err != nil {
			fields["endTime"] = "must be a valid 24-hour time (HH:MM)"
		}
	}
	if _, startBad := fields["startTime"]; !startBad {
		if _, endBad := fields["endTime"]; !endBad {
			slot := schedule.Interval{Start: start, End: end}
			switch {
			case !slot.Valid():
				fields["endTime"] = "must be after startTime"
			case start < s.workday.Start || end > s.workday.End:
				fields["startTime"] = fmt.Sprintf("booking must fall within working hours (%s - %s)", s.workday.Start, s.workday.End)
			}
		}
	}

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "is required"
	}
	if strings.TrimSpace(req.Purpose) == "" {
		fields["purpose"] = "is required"
	}

	var room *db.Room
	if _, floorBad := fields["floor"]; !floorBad {
		if _, roomBad := fields["room"]; !roomBad {
			var err error
			room, err = s.store.GetRoom(ctx, req.Floor, req.Room)
			if err != nil {
				return nil, err
			}
			if room == nil {
				fields["room"] = fmt.Sprintf("no hall named %q on floor %s", req.Room, req.Floor)
			}
		}
	}

	if len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	booking := &db.Booking{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		Room:      room.Name,
		Floor:     room.Floor,
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Purpose:   strings.TrimSpace(req.Purpose),
		Status:    schedule.StatusPending,
	}

	conflict, booked, err := s.store.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}
	if conflict {
		free := schedule.FreeSlots(s.workday.Start, s.workday.End, booked)
		message := fmt.Sprintf("%s (floor %s) is not available on %s from %s to %s",
			room.Name, room.Floor, req.Date, start, end)
		return nil, apperr.NewConflict(message, free)
	}

	resp := entities.BookingResponseFrom(booking)
	return &resp, nil
}

// ListBookings returns every booking, newest submission first.
func (s *BookingService) ListBookings(ctx context.Context) ([]entities.BookingResponse, error) {
	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, entities.BookingResponseFrom(&bookings[i]))
	}
	return responses, nil
}

// AvailableSlots returns the free intervals of the working day for a room
// and date, the same computation the conflict response uses.
func (s *BookingService) AvailableSlots(ctx context.Context, floor, roomName, dateStr string) ([]schedule.Interval, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, apperr.NewFieldError("date", "must be a valid date (YYYY-MM-DD)")
	}
	room, err := s.store.GetRoom(ctx, floor, roomName)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperr.NewFieldError("room", fmt.Sprintf("no hall named %q on floor %s", roomName, floor))
	}

	booked, err := s.store.BookedIntervals(ctx, room.ID, date)
	if err != nil {
		return nil, err
	}
	return schedule.FreeSlots(s.workday.Start, s.workday.End, booked), nil
}

// UpdateStatus moves a Pending booking to Approved or Rejected and emails
// the requester the decision. Rejection requires a reason.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, req entities.StatusUpdateRequest) (*entities.BookingResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	status, err := schedule.ParseStatus(req.Status)
	if err != nil || status == schedule.StatusPending {
		return nil, apperr.NewFieldError("status", "must be Approved or Rejected")
	}

	reason := strings.TrimSpace(req.Reason)
	if status == schedule.StatusRejected && reason == "" {
		return nil, apperr.NewFieldError("reason", "a rejection reason is required")
	}

	booking, err := s.store.UpdateStatus(ctx, id, status, reason)
	if err != nil {
		return nil, err
	}

	resp := entities.BookingResponseFrom(booking)
	if s.sender != nil {
		s.sender.SendBookingDecisionEmail(resp)
	}
	return &resp, nil
}

// Calendar buckets bookings into per-month views. The window is span
// months wide and centered on the pivot month; every month appears even
// when it has no bookings, and counts always carry all three statuses.
func (s *BookingService) Calendar(ctx context.Context, month string, span int) ([]entities.CalendarMonth, error) {
	pivot := s.now()
	if month != "" {
		var err error
		pivot, err = time.Parse("2006-01", month)
		if err != nil {
			return nil, apperr.NewFieldError("month", "must be a valid month (YYYY-MM)")
		}
	}
	if span != 1 && span != 3 && span != 6 {
		return nil, apperr.NewFieldError("span", "must be 1, 3 or 6")
	}

	from := time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -span/2, 0)
	to := from.AddDate(0, span, 0)

	bookings, err := s.store.ListBookingsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	months := make([]entities.CalendarMonth, span)
	index := make(map[string]int, span)
	for i := 0; i < span; i++ {
		key := from.AddDate(0, i, 0).Format("2006-01")
		months[i] = entities.CalendarMonth{
			Month:  key,
			Events: []entities.CalendarEvent{},
			Counts: map[schedule.Status]int{
				schedule.StatusPending:  0,
				schedule.StatusApproved: 0,
				schedule.StatusRejected: 0,
			},
		}
		index[key] = i
	}

	for i := range bookings {
		b := &bookings[i]
		key := b.Date.Format("2006-01")
		at, ok := index[key]
		if !ok {
			continue
		}
		months[at].Events = append(months[at].Events, entities.CalendarEvent{
			ID:        b.ID,
			Room:      b.Room,
			Floor:     b.Floor,
			Date:      b.Date.Format(dateLayout),
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Name:      b.Name,
			Purpose:   b.Purpose,
			Status:    b.Status,
			Color:     b.Status.Color(),
		})
		months[at].Counts[b.Status]++
	}
	return months, nil
}

func (s *BookingService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
