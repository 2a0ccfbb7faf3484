package handlers

import (
	"net/http"
	"strconv"

	"roombook/middleware"
	"roombook/services/rooms"
	"roombook/utils"

	"github.com/gin-gonic/gin"
)

// RoomHandler proxies room CRUD to the upstream API.
type RoomHandler struct{}

func NewRoomHandler() *RoomHandler {
	return &RoomHandler{}
}

func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	q := rooms.ListQuery{
		Name:     c.Query("name"),
		Location: c.Query("location"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "active must be a boolean", raw)
			return
		}
		q.Active = &active
	}
	result, err := rooms.NewService(middleware.APIClient(c)).List(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"rooms": result}})
}

func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	room, err := rooms.NewService(middleware.APIClient(c)).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}

func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var input rooms.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := rooms.NewService(middleware.APIClient(c)).Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create room", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	var input rooms.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	updated, err := rooms.NewService(middleware.APIClient(c)).Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to update room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	if err := rooms.NewService(middleware.APIClient(c)).Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to delete room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}
