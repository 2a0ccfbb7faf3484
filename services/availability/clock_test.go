package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInstant(t *testing.T, date, clock string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)
	require.NoError(t, ValidateClock(clock))
	return d.Add(time.Duration(clockMinutes(clock)) * time.Minute)
}

func TestValidateClock(t *testing.T) {
	for _, valid := range []string{"00:00", "07:30", "12:15", "23:59"} {
		assert.NoError(t, ValidateClock(valid), valid)
	}
	for _, invalid := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-30", "12:345"} {
		assert.ErrorIs(t, ValidateClock(invalid), ErrInvalidTimeFormat, invalid)
	}
}

func TestClockMinutesRoundTrip(t *testing.T) {
	assert.Equal(t, 450, clockMinutes("07:30"))
	assert.Equal(t, "07:30", minutesClock(450))
	assert.Equal(t, 0, clockMinutes("00:00"))
	assert.Equal(t, "23:59", minutesClock(23*60+59))
}

func TestDatesWindow(t *testing.T) {
	today := time.Date(2026, time.January, 15, 18, 45, 12, 0, time.UTC)
	window := DatesWindow(today, 7)
	require.Len(t, window, 7)

	// First entry is today normalized to start of day.
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), window[0])
	// Consecutive days, all at midnight.
	for i, d := range window {
		assert.Equal(t, window[0].AddDate(0, 0, i), d)
	}
	// Recomputed fresh, not cached.
	again := DatesWindow(today, 7)
	assert.Equal(t, window, again)
}

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid(7, 10)
	assert.Equal(t, []string{"07:00", "08:00", "09:00"}, grid)

	assert.Empty(t, SlotGrid(10, 10))
}
