package entities

// BookingEmailData feeds the booking decision email template.
type BookingEmailData struct {
	Name            string
	Room            string
	Floor           string
	Date            string
	TimeRange       string
	Status          string
	RejectionReason string
	CurrentYear     int
}
