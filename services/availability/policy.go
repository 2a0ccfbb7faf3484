package availability

import (
	"strings"
	"time"

	"roombook/models"
)

// BlockPolicy decides whether a room is unbookable on a given date. Policies
// are supplied by configuration so new blackout rules can be added without
// touching selection logic.
type BlockPolicy func(room models.Room, date time.Time) bool

// KeywordWeekdayPolicy blocks rooms whose name contains any of the given
// keywords (case-insensitive) on the given weekday. This is the observed
// rule: supervisory rooms cannot be booked on Mondays.
func KeywordWeekdayPolicy(keywords []string, day time.Weekday) BlockPolicy {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(room models.Room, date time.Time) bool {
		if date.Weekday() != day {
			return false
		}
		name := strings.ToLower(room.Name)
		for _, k := range lowered {
			if k != "" && strings.Contains(name, k) {
				return true
			}
		}
		return false
	}
}

// AllowAll is the neutral policy.
func AllowAll(models.Room, time.Time) bool { return false }
