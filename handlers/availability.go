package handlers

import (
	"errors"
	"net/http"
	"time"

	"roombook/config"
	"roombook/middleware"
	"roombook/services/availability"
	"roombook/services/bookings"
	"roombook/services/rooms"
	"roombook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the slot and session availability views consumed
// by booking pickers.
type AvailabilityHandler struct {
	Policy   availability.BlockPolicy
	Sessions []availability.Session
	Now      func() time.Time
}

func NewAvailabilityHandler(policy availability.BlockPolicy, sessions []availability.Session) *AvailabilityHandler {
	return &AvailabilityHandler{Policy: policy, Sessions: sessions, Now: time.Now}
}

type sessionView struct {
	availability.Session
	Available bool `json:"available"`
}

type slotView struct {
	Time   string              `json:"time"`
	Status availability.Status `json:"status"`
}

// GetAvailabilityHandler computes the availability picture for one room and
// date: per-session availability and the hourly slot status grid. Optional
// start_time/end_time query params replay the caller's current selection so
// selected and in-range states render server-side.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	roomID := c.Query("room_id")
	date := c.Query("date")
	if roomID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_id and date are required", "")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD", err.Error())
		return
	}
	sel := availability.Selection{Date: date, Start: c.Query("start_time"), End: c.Query("end_time")}
	clicked := c.Query("select")
	for _, t := range []string{sel.Start, sel.End, clicked} {
		if t != "" {
			if err := availability.ValidateClock(t); err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid time format", t)
				return
			}
		}
	}

	ctx := c.Request.Context()
	api := middleware.APIClient(c)
	now := h.Now()

	room, err := rooms.NewService(api).Get(ctx, roomID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch room", err.Error())
		return
	}

	parsedDate, _ := time.ParseInLocation("2006-01-02", date, now.Location())
	if h.Policy(*room, parsedDate) {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"room_id": roomID,
			"date":    date,
			"blocked": true,
		}})
		return
	}

	dayBookings, err := bookings.NewService(api).List(ctx, bookings.ListQuery{RoomID: roomID, BookingDate: date})
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch bookings", err.Error())
		return
	}

	// A click on a slot advances the selection before the grid is rendered.
	var warning string
	if clicked != "" {
		next, err := availability.SelectTime(clicked, date, dayBookings, sel, now)
		if errors.Is(err, availability.ErrRangeUnavailable) {
			warning = "selected range is unavailable, selection restarted"
		}
		sel = next
	}

	sessionViews := make([]sessionView, 0, len(h.Sessions))
	for _, s := range h.Sessions {
		sessionViews = append(sessionViews, sessionView{
			Session:   s,
			Available: availability.SessionAvailable(s, date, dayBookings, now),
		})
	}

	grid := availability.SlotGrid(config.AppConfig.OpeningHour, config.AppConfig.ClosingHour)
	slotViews := make([]slotView, 0, len(grid))
	for _, t := range grid {
		slotViews = append(slotViews, slotView{
			Time:   t,
			Status: availability.SlotStatus(t, date, dayBookings, sel, now),
		})
	}

	payload := gin.H{
		"room_id":   roomID,
		"date":      date,
		"blocked":   false,
		"sessions":  sessionViews,
		"slots":     slotViews,
		"selection": sel,
	}
	if warning != "" {
		payload["warning"] = warning
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// GetDatesHandler returns the bookable date window for a room, flagging
// blackout dates.
func (h *AvailabilityHandler) GetDatesHandler(c *gin.Context) {
	roomID := c.Query("room_id")
	if roomID == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_id is required", "")
		return
	}

	api := middleware.APIClient(c)
	room, err := rooms.NewService(api).Get(c.Request.Context(), roomID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch room", err.Error())
		return
	}

	now := h.Now()
	window := availability.DatesWindow(now, config.AppConfig.BookingWindowDays)
	type dateView struct {
		Date    string `json:"date"`
		Weekday string `json:"weekday"`
		Blocked bool   `json:"blocked"`
		Today   bool   `json:"today"`
	}
	views := make([]dateView, 0, len(window))
	for i, d := range window {
		views = append(views, dateView{
			Date:    d.Format("2006-01-02"),
			Weekday: d.Weekday().String(),
			Blocked: h.Policy(*room, d),
			Today:   i == 0,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"room_id": roomID, "dates": views}})
}
