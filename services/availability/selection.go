package availability

import (
	"fmt"
	"time"

	"roombook/models"
)

// SelectTime advances the selection with a click on slot t for date. It is a
// pure state transition: the returned Selection fully replaces the old one.
//
// Clicking with no start set, or after a complete range, anchors a fresh
// start. Clicking strictly after the current start attempts to close the
// range, which succeeds only when every slot from start through t is neither
// booked nor past; otherwise the selection re-anchors at t and
// ErrRangeUnavailable is returned as a non-fatal warning. Clicking at or
// before the current start always re-anchors, never selects a zero or
// negative-length range.
func SelectTime(t, date string, bookings []models.Booking, sel Selection, now time.Time) (Selection, error) {
	if sel.Start == "" || sel.Complete() {
		return Selection{Date: date, Start: t}, nil
	}
	if t <= sel.Start {
		return Selection{Date: date, Start: t}, nil
	}
	for m := clockMinutes(sel.Start); m <= clockMinutes(t); m += 60 {
		switch SlotStatus(minutesClock(m), date, bookings, sel, now) {
		case StatusPast, StatusBooked:
			return Selection{Date: date, Start: t}, ErrRangeUnavailable
		}
	}
	return Selection{Date: date, Start: sel.Start, End: t}, nil
}

// BookingEnd converts the selected end slot (or the start slot, when only a
// start was chosen) into the exclusive end time persisted upstream: the
// slot's hour plus one. Slot granularity is whole hours, so anything other
// than an "HH:00" value is rejected rather than silently truncated.
func BookingEnd(t string) (string, error) {
	if err := ValidateClock(t); err != nil {
		return "", err
	}
	m := clockMinutes(t)
	if m%60 != 0 {
		return "", ErrInvalidTimeFormat
	}
	return fmt.Sprintf("%02d:00", m/60+1), nil
}

// Validate checks a submitted selection against current bookings: the range
// must be well-formed and every slot in [Start, End] individually bookable.
// It backs the gateway's final pre-submission check.
func Validate(sel Selection, bookings []models.Booking, now time.Time) error {
	if err := ValidateClock(sel.Start); err != nil {
		return err
	}
	end := sel.End
	if end == "" {
		end = sel.Start
	} else if err := ValidateClock(end); err != nil {
		return err
	}
	if end < sel.Start {
		return ErrRangeUnavailable
	}
	for m := clockMinutes(sel.Start); m <= clockMinutes(end); m += 60 {
		switch SlotStatus(minutesClock(m), sel.Date, bookings, Selection{}, now) {
		case StatusPast, StatusBooked:
			return ErrRangeUnavailable
		}
	}
	return nil
}
