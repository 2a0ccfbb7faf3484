package availability

import (
	"fmt"
	"time"
)

// ValidateClock checks that s is a zero-padded 24-hour "HH:MM" value.
// All other engine functions assume their clock inputs passed this check.
func ValidateClock(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidTimeFormat
	}
	hh, mm := clockDigits(s[0], s[1]), clockDigits(s[3], s[4])
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return ErrInvalidTimeFormat
	}
	return nil
}

func clockDigits(hi, lo byte) int {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return -1
	}
	return int(hi-'0')*10 + int(lo-'0')
}

// clockMinutes converts a validated "HH:MM" value to minutes from midnight.
func clockMinutes(s string) int {
	return clockDigits(s[0], s[1])*60 + clockDigits(s[3], s[4])
}

// minutesClock converts minutes from midnight back to "HH:MM".
func minutesClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// instantOn combines a "YYYY-MM-DD" date and a "HH:MM" clock value into an
// instant in now's location, so past-time checks compare like with like.
func instantOn(date, clock string, now time.Time) time.Time {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		// Malformed dates are a boundary violation; treat them as unbookable.
		return time.Time{}
	}
	return d.Add(time.Duration(clockMinutes(clock)) * time.Minute)
}

// DatesWindow returns days consecutive calendar dates starting at today
// (inclusive), each normalized to the start of day. The window is recomputed
// fresh on every call.
func DatesWindow(today time.Time, days int) []time.Time {
	dayZero := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, dayZero.AddDate(0, 0, i))
	}
	return dates
}

// SlotGrid returns the hourly slot ticks from opening (inclusive) to closing
// (exclusive) as "HH:00" values.
func SlotGrid(opening, closing int) []string {
	var grid []string
	for h := opening; h < closing; h++ {
		grid = append(grid, fmt.Sprintf("%02d:00", h))
	}
	return grid
}
