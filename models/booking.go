package models

// Booking status values as used by the upstream API.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a booking record for a room on a single date.
// StartTime and EndTime are zero-padded "HH:MM" wall-clock strings;
// EndTime is exclusive, so a 08:00-09:00 booking occupies the 08:00 slot only.
type Booking struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	GuestName   string `json:"guest_name"`
	GuestEmail  string `json:"guest_email,omitempty"`
	GuestPhone  string `json:"guest_phone,omitempty"`
	BookingDate string `json:"booking_date"` // "YYYY-MM-DD"
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Purpose     string `json:"purpose,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	CreatedBy   string `json:"created_by,omitempty"`
	ModifiedAt  string `json:"modified_at"`
	ModifiedBy  string `json:"modified_by,omitempty"`
}

// Blocking reports whether this booking counts against availability.
// Cancelled bookings never block.
func (b Booking) Blocking() bool {
	return b.Status != BookingStatusCancelled
}

// BookingInput is the payload for creating or updating a booking upstream.
// Field presence is validated by the create handler; updates may be partial.
type BookingInput struct {
	RoomID      string `json:"room_id,omitempty"`
	GuestName   string `json:"guest_name,omitempty"`
	GuestEmail  string `json:"guest_email,omitempty"`
	GuestPhone  string `json:"guest_phone,omitempty"`
	BookingDate string `json:"booking_date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	Status      string `json:"status,omitempty"`
}
