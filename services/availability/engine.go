package availability

import (
	"time"

	"roombook/models"
)

// Session is a named, fixed block of time offered as a single bookable unit.
type Session struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// DefaultSessions is the observed session catalogue.
var DefaultSessions = []Session{
	{ID: "1", Label: "Sesi 1 (07:30 - 12:15)", Start: "07:30", End: "12:15"},
	{ID: "2", Label: "Sesi 2 (13:00 - 15:00)", Start: "13:00", End: "15:00"},
	{ID: "3", Label: "Full Day (07:30 - 15:00)", Start: "07:30", End: "15:00"},
}

// Status classifies a single slot in the picker.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPast      Status = "past"
	StatusBooked    Status = "booked"
	StatusSelected  Status = "selected"
	StatusInRange   Status = "in-range"
)

// Selection is the caller-owned start/end selection state for one booking
// attempt. Empty strings mean unset; Start is set before End.
type Selection struct {
	Date  string `json:"date,omitempty"`
	Start string `json:"start_time,omitempty"`
	End   string `json:"end_time,omitempty"`
}

// Complete reports whether both ends of the range are set.
func (s Selection) Complete() bool {
	return s.Start != "" && s.End != ""
}

// overlaps reports half-open interval overlap: [aStart, aEnd) and
// [bStart, bEnd) overlap iff aStart < bEnd and aEnd > bStart. Lexicographic
// comparison is valid because HH:MM values are zero-padded.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// SessionAvailable reports whether the whole session can still be booked on
// date. A session whose start instant is not strictly after now is unbookable,
// as is one overlapping any non-cancelled booking.
func SessionAvailable(s Session, date string, bookings []models.Booking, now time.Time) bool {
	if !instantOn(date, s.Start, now).After(now) {
		return false
	}
	for _, b := range bookings {
		if !b.Blocking() {
			continue
		}
		if overlaps(b.StartTime, b.EndTime, s.Start, s.End) {
			return false
		}
	}
	return true
}

// SlotStatus classifies the slot at t on date. Precedence, first match wins:
// past, booked, selected, in-range, available. A booked slot inside a selected
// range stays booked, never in-range.
func SlotStatus(t, date string, bookings []models.Booking, sel Selection, now time.Time) Status {
	if !instantOn(date, t, now).After(now) {
		return StatusPast
	}
	for _, b := range bookings {
		if b.Blocking() && b.StartTime <= t && t < b.EndTime {
			return StatusBooked
		}
	}
	if t == sel.Start || (sel.End != "" && t == sel.End) {
		return StatusSelected
	}
	if sel.Complete() && sel.Start < t && t < sel.End {
		return StatusInRange
	}
	return StatusAvailable
}
