package availability

import (
	"testing"

	"roombook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTime_FreshAnchor(t *testing.T) {
	sel, err := SelectTime("10:00", testDate, nil, Selection{}, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, Selection{Date: testDate, Start: "10:00"}, sel)
}

func TestSelectTime_ReAnchorAtOrBeforeStart(t *testing.T) {
	start := Selection{Date: testDate, Start: "10:00"}

	sel, err := SelectTime("09:00", testDate, nil, start, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, Selection{Date: testDate, Start: "09:00"}, sel)

	// Clicking the start itself re-anchors too, never a zero-length range.
	sel, err = SelectTime("10:00", testDate, nil, start, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, Selection{Date: testDate, Start: "10:00"}, sel)
}

func TestSelectTime_CloseRange(t *testing.T) {
	start := Selection{Date: testDate, Start: "10:00"}
	sel, err := SelectTime("13:00", testDate, nil, start, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, Selection{Date: testDate, Start: "10:00", End: "13:00"}, sel)
}

func TestSelectTime_CompleteSelectionStartsOver(t *testing.T) {
	complete := Selection{Date: testDate, Start: "10:00", End: "13:00"}
	sel, err := SelectTime("11:00", testDate, nil, complete, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, Selection{Date: testDate, Start: "11:00"}, sel)
}

func TestSelectTime_RangeBlockedByBooking(t *testing.T) {
	bookings := []models.Booking{confirmed("11:00", "12:00")}
	start := Selection{Date: testDate, Start: "10:00"}

	sel, err := SelectTime("13:00", testDate, bookings, start, dayBefore)
	assert.ErrorIs(t, err, ErrRangeUnavailable)
	// Selection resets to a fresh anchor at the clicked slot.
	assert.Equal(t, Selection{Date: testDate, Start: "13:00"}, sel)
}

func TestSelectTime_RangeBlockedByPast(t *testing.T) {
	// 10:30 on the booking date: the 10:00 anchor slot is already past.
	now := mustInstant(t, testDate, "10:30")
	start := Selection{Date: testDate, Start: "10:00"}

	sel, err := SelectTime("13:00", testDate, nil, start, now)
	assert.ErrorIs(t, err, ErrRangeUnavailable)
	assert.Equal(t, Selection{Date: testDate, Start: "13:00"}, sel)
}

func TestSelectTime_ScenarioSequence(t *testing.T) {
	// selectTime("10:00", {}) -> start 10:00; selectTime("09:00", ...) -> re-anchor.
	sel, err := SelectTime("10:00", testDate, nil, Selection{}, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, "10:00", sel.Start)
	assert.Empty(t, sel.End)

	sel, err = SelectTime("09:00", testDate, nil, sel, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, Selection{Date: testDate, Start: "09:00"}, sel)
}

func TestSelectTime_ClosedRangeHadNoBookedSlots(t *testing.T) {
	bookings := []models.Booking{confirmed("08:00", "09:00"), confirmed("14:00", "15:00")}

	sel, err := SelectTime("09:00", testDate, bookings, Selection{}, dayBefore)
	require.NoError(t, err)
	sel, err = SelectTime("13:00", testDate, bookings, sel, dayBefore)
	require.NoError(t, err)
	require.True(t, sel.Complete())

	for m := clockMinutes(sel.Start); m <= clockMinutes(sel.End); m += 60 {
		status := SlotStatus(minutesClock(m), testDate, bookings, Selection{}, dayBefore)
		assert.NotEqual(t, StatusBooked, status, "slot %s", minutesClock(m))
	}
}

func TestBookingEnd(t *testing.T) {
	end, err := BookingEnd("10:00")
	require.NoError(t, err)
	assert.Equal(t, "11:00", end)

	end, err = BookingEnd("09:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", end)

	// Sub-hour input is rejected, not truncated.
	_, err = BookingEnd("10:30")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = BookingEnd("bogus")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestValidate(t *testing.T) {
	bookings := []models.Booking{confirmed("11:00", "12:00")}

	ok := Selection{Date: testDate, Start: "08:00", End: "10:00"}
	assert.NoError(t, Validate(ok, bookings, dayBefore))

	throughBooked := Selection{Date: testDate, Start: "10:00", End: "13:00"}
	assert.ErrorIs(t, Validate(throughBooked, bookings, dayBefore), ErrRangeUnavailable)

	singlePoint := Selection{Date: testDate, Start: "09:00"}
	assert.NoError(t, Validate(singlePoint, bookings, dayBefore))

	badClock := Selection{Date: testDate, Start: "9:00"}
	assert.ErrorIs(t, Validate(badClock, bookings, dayBefore), ErrInvalidTimeFormat)

	inverted := Selection{Date: testDate, Start: "13:00", End: "10:00"}
	assert.ErrorIs(t, Validate(inverted, bookings, dayBefore), ErrRangeUnavailable)
}
