package availability

import (
	"testing"
	"time"

	"roombook/models"

	"github.com/stretchr/testify/assert"
)

const testDate = "2026-01-16"

// noon the day before testDate, so nothing on testDate is past.
var dayBefore = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func confirmed(start, end string) models.Booking {
	return models.Booking{
		RoomID:      "room-1",
		BookingDate: testDate,
		StartTime:   start,
		EndTime:     end,
		Status:      models.BookingStatusConfirmed,
	}
}

func cancelled(start, end string) models.Booking {
	b := confirmed(start, end)
	b.Status = models.BookingStatusCancelled
	return b
}

func TestSessionAvailable_NoBookings(t *testing.T) {
	s := Session{ID: "1", Start: "07:30", End: "12:15"}
	assert.True(t, SessionAvailable(s, testDate, nil, dayBefore))
}

func TestSessionAvailable_OverlapMidSession(t *testing.T) {
	s := Session{ID: "1", Start: "07:30", End: "12:15"}
	bookings := []models.Booking{confirmed("10:00", "11:00")}
	assert.False(t, SessionAvailable(s, testDate, bookings, dayBefore))
}

func TestSessionAvailable_HalfOpenBoundaries(t *testing.T) {
	s := Session{ID: "2", Start: "13:00", End: "15:00"}

	// Booking ending exactly at session start does not overlap.
	assert.True(t, SessionAvailable(s, testDate, []models.Booking{confirmed("11:00", "13:00")}, dayBefore))
	// Booking starting exactly at session end does not overlap.
	assert.True(t, SessionAvailable(s, testDate, []models.Booking{confirmed("15:00", "16:00")}, dayBefore))
	// One minute of overlap blocks.
	assert.False(t, SessionAvailable(s, testDate, []models.Booking{confirmed("14:59", "16:00")}, dayBefore))
}

func TestSessionAvailable_CancelledNeverBlocks(t *testing.T) {
	s := Session{ID: "3", Start: "07:30", End: "15:00"}
	bookings := []models.Booking{cancelled("08:00", "14:00")}
	assert.True(t, SessionAvailable(s, testDate, bookings, dayBefore))
}

func TestSessionAvailable_PastSessionUnbookable(t *testing.T) {
	s := Session{ID: "1", Start: "07:30", End: "12:15"}

	// Now exactly at session start: "now itself" is unbookable.
	atStart := time.Date(2026, time.January, 16, 7, 30, 0, 0, time.UTC)
	assert.False(t, SessionAvailable(s, testDate, nil, atStart))

	// One minute before start is still bookable.
	justBefore := atStart.Add(-time.Minute)
	assert.True(t, SessionAvailable(s, testDate, nil, justBefore))

	// Mid-session now: start has passed.
	midSession := time.Date(2026, time.January, 16, 9, 0, 0, 0, time.UTC)
	assert.False(t, SessionAvailable(s, testDate, nil, midSession))
}

func TestSlotStatus_BookedHalfOpenBoundary(t *testing.T) {
	bookings := []models.Booking{confirmed("08:00", "09:00")}

	assert.Equal(t, StatusBooked, SlotStatus("08:00", testDate, bookings, Selection{}, dayBefore))
	assert.Equal(t, StatusAvailable, SlotStatus("09:00", testDate, bookings, Selection{}, dayBefore))
}

func TestSlotStatus_PastWinsOverBooked(t *testing.T) {
	bookings := []models.Booking{confirmed("08:00", "09:00")}
	afterSlot := time.Date(2026, time.January, 16, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusPast, SlotStatus("08:00", testDate, bookings, Selection{}, afterSlot))
}

func TestSlotStatus_SelectedAndInRange(t *testing.T) {
	sel := Selection{Date: testDate, Start: "10:00", End: "13:00"}

	assert.Equal(t, StatusSelected, SlotStatus("10:00", testDate, nil, sel, dayBefore))
	assert.Equal(t, StatusSelected, SlotStatus("13:00", testDate, nil, sel, dayBefore))
	assert.Equal(t, StatusInRange, SlotStatus("11:00", testDate, nil, sel, dayBefore))
	assert.Equal(t, StatusInRange, SlotStatus("12:00", testDate, nil, sel, dayBefore))
	assert.Equal(t, StatusAvailable, SlotStatus("14:00", testDate, nil, sel, dayBefore))
}

func TestSlotStatus_BookedInsideRangeStaysBooked(t *testing.T) {
	sel := Selection{Date: testDate, Start: "10:00", End: "13:00"}
	bookings := []models.Booking{confirmed("11:00", "12:00")}
	assert.Equal(t, StatusBooked, SlotStatus("11:00", testDate, bookings, sel, dayBefore))
}

func TestSlotStatus_BookedRegardlessOfSelection(t *testing.T) {
	bookings := []models.Booking{confirmed("08:00", "11:00")}
	for _, sel := range []Selection{
		{},
		{Date: testDate, Start: "09:00"},
		{Date: testDate, Start: "08:00", End: "10:00"},
	} {
		for _, slot := range []string{"08:00", "09:00", "10:00"} {
			assert.Equal(t, StatusBooked, SlotStatus(slot, testDate, bookings, sel, dayBefore),
				"slot %s with selection %+v", slot, sel)
		}
	}
}

func TestSlotStatus_Idempotent(t *testing.T) {
	bookings := []models.Booking{confirmed("08:00", "09:00"), cancelled("10:00", "11:00")}
	sel := Selection{Date: testDate, Start: "12:00"}

	first := SlotStatus("10:00", testDate, bookings, sel, dayBefore)
	second := SlotStatus("10:00", testDate, bookings, sel, dayBefore)
	assert.Equal(t, first, second)
	assert.Equal(t, StatusAvailable, first)
}
