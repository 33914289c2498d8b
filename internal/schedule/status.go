package schedule

import "fmt"

// Status is the lifecycle state of a booking. Pending is the only initial
// state; Approved and Rejected are terminal.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus validates a wire status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Occupies reports whether a booking in this status holds its slot.
// Rejected bookings free the slot.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusApproved
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// statusColors is the single status→display-color table; every view that
// styles bookings by status reads from here.
var statusColors = map[Status]string{
	StatusPending:  "#F59E0B",
	StatusApproved: "#10B981",
	StatusRejected: "#EF4444",
}

// Color returns the display color for the status, defaulting to the
// Pending color for anything unrecognized.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusPending]
}
