package db

import (
	"database/sql"
	"time"

	"ivms/internal/schedule"
)

// Room is one bookable hall; the catalog is seeded by migration and defines
// which rooms exist on which floor.
type Room struct {
	ID    int
	Floor string
	Name  string
}

type Booking struct {
	ID              string
	RoomID          int
	Room            string
	Floor           string
	Name            string
	Email           string
	Date            time.Time
	StartTime       schedule.TimeOfDay
	EndTime         schedule.TimeOfDay
	Purpose         string
	Status          schedule.Status
	RejectionReason sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Interval returns the booking's slot within its date.
func (b *Booking) Interval() schedule.Interval {
	return schedule.Interval{Start: b.StartTime, End: b.EndTime}
}

type Visitor struct {
	ID           string
	Serial       int64
	Name         string
	Address      string
	Designation  string
	Phone        string
	Email        string
	PersonToMeet string
	Purpose      string
	Photo        string
	Pincode      string
	Device       string
	CreatedAt    time.Time
}

type Courier struct {
	ID              string
	Serial          int64
	VisitorName     string
	CourierName     string
	CourierID       string
	Phone           string
	PersonToDeliver string
	CreatedAt       time.Time
}

type User struct {
	ID           int
	Name         string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
