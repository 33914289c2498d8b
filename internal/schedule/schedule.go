package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
// Wire format is 24-hour "HH:MM" (seconds accepted on input and ignored).
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into a TimeOfDay. Anything
// beyond the seconds field is rejected, not ignored.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
	}

	fields := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
		}
		fields[i] = n
	}

	h, m := fields[0], fields[1]
	sec := 0
	if len(fields) == 3 {
		sec = fields[2]
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid reports whether t falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// Interval is a half-open time slot [Start, End) on a single date.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

func (iv Interval) Valid() bool {
	return iv.Start.Valid() && iv.End.Valid() && iv.Start < iv.End
}

// Overlaps reports whether two half-open intervals intersect.
// Touching boundaries (iv.End == other.Start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// MarshalJSON emits the interval as {"start":"HH:MM","end":"HH:MM"}.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"start":%q,"end":%q}`, iv.Start, iv.End)), nil
}

// AnyOverlap reports whether candidate intersects any of the given intervals.
func AnyOverlap(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// FreeSlots returns the complement of the union of booked intervals within
// the working day [dayStart, dayEnd), in chronological order. Intervals may
// be unsorted and may overlap each other; zero-length slots are never
// emitted.
func FreeSlots(dayStart, dayEnd TimeOfDay, booked []Interval) []Interval {
	sorted := make([]Interval, len(booked))
	copy(sorted, booked)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var free []Interval
	cursor := dayStart

	for _, iv := range sorted {
		if iv.Start >= dayEnd {
			break
		}
		if cursor < iv.Start {
			free = append(free, Interval{Start: cursor, End: iv.Start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if cursor < dayEnd {
		free = append(free, Interval{Start: cursor, End: dayEnd})
	}
	return free
}
