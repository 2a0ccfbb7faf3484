package handlers

import (
	"net/http"
	"time"

	"roombook/middleware"
	"roombook/models"
	"roombook/services/availability"
	"roombook/services/bookings"
	"roombook/services/rooms"
	"roombook/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler proxies booking CRUD to the upstream API, validating new
// bookings against the availability engine before submission.
type BookingHandler struct {
	Policy availability.BlockPolicy
	Now    func() time.Time
}

func NewBookingHandler(policy availability.BlockPolicy) *BookingHandler {
	return &BookingHandler{Policy: policy, Now: time.Now}
}

func listQueryFromContext(c *gin.Context) bookings.ListQuery {
	return bookings.ListQuery{
		RoomID:      c.Query("room_id"),
		Status:      c.Query("status"),
		BookingDate: c.Query("booking_date"),
	}
}

func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	result, err := bookings.NewService(middleware.APIClient(c)).List(c.Request.Context(), listQueryFromContext(c))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"bookings": result}})
}

func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	result, err := bookings.NewService(middleware.APIClient(c)).Mine(c.Request.Context(), listQueryFromContext(c))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"bookings": result}})
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := bookings.NewService(middleware.APIClient(c)).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// CreateBookingHandler validates the requested time against room policy and
// current bookings, then forwards the booking upstream. When no end time is
// given the slot flow applies: the booking covers one hour from the selected
// slot, with the exclusive end persisted.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.RoomID == "" || input.GuestName == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_id and guest_name are required", "")
		return
	}

	now := h.Now()
	date, err := time.ParseInLocation("2006-01-02", input.BookingDate, now.Location())
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "booking_date must be YYYY-MM-DD", err.Error())
		return
	}
	if err := availability.ValidateClock(input.StartTime); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start_time", input.StartTime)
		return
	}
	if input.EndTime == "" {
		end, err := availability.BookingEnd(input.StartTime)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "start_time must be on the hour for slot bookings", input.StartTime)
			return
		}
		input.EndTime = end
	} else if err := availability.ValidateClock(input.EndTime); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end_time", input.EndTime)
		return
	}
	if input.EndTime <= input.StartTime {
		utils.JSONError(c, http.StatusBadRequest, "end_time must be after start_time", "")
		return
	}

	ctx := c.Request.Context()
	api := middleware.APIClient(c)

	room, err := rooms.NewService(api).Get(ctx, input.RoomID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch room", err.Error())
		return
	}
	if h.Policy(*room, date) {
		utils.JSONError(c, http.StatusConflict, "room cannot be booked on this date", "")
		return
	}

	svc := bookings.NewService(api)
	existing, err := svc.List(ctx, bookings.ListQuery{RoomID: input.RoomID, BookingDate: input.BookingDate})
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch bookings", err.Error())
		return
	}

	requested := availability.Session{Start: input.StartTime, End: input.EndTime}
	if !availability.SessionAvailable(requested, input.BookingDate, existing, now) {
		utils.JSONError(c, http.StatusConflict, "requested time is not available", "")
		return
	}

	if input.Status == "" {
		input.Status = models.BookingStatusPending
	}
	created, err := svc.Create(ctx, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	updated, err := bookings.NewService(middleware.APIClient(c)).Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to update booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := bookings.NewService(middleware.APIClient(c)).Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
