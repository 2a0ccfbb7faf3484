package handlers

import (
	"net/http"
	"strconv"

	"roombook/middleware"
	"roombook/models"
	"roombook/services/users"
	"roombook/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler proxies user CRUD to the upstream API.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	q := users.ListQuery{
		Email: c.Query("email"),
		Level: c.Query("level"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "active must be a boolean", raw)
			return
		}
		q.Active = &active
	}
	result, err := users.NewService(middleware.APIClient(c)).List(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"users": result}})
}

func (h *UserHandler) GetUserHandler(c *gin.Context) {
	user, err := users.NewService(middleware.APIClient(c)).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := users.NewService(middleware.APIClient(c)).Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	updated, err := users.NewService(middleware.APIClient(c)).Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to update user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := users.NewService(middleware.APIClient(c)).Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to delete user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
