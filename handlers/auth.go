package handlers

import (
	"net/http"
	"time"

	"roombook/client"
	"roombook/config"
	"roombook/middleware"
	"roombook/services/auth"
	"roombook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthHandler owns the gateway session lifecycle: it exchanges upstream
// credentials for a Redis-backed session holding the upstream token pair.
type AuthHandler struct {
	Redis    *redis.Client
	Registry *client.Registry
}

func NewAuthHandler(redisClient *redis.Client, registry *client.Registry) *AuthHandler {
	return &AuthHandler{Redis: redisClient, Registry: registry}
}

func (h *AuthHandler) sessionTTL() time.Duration {
	return time.Duration(config.AppConfig.SessionTTL) * time.Hour
}

// LoginHandler authenticates against the upstream API, stores the returned
// token pair under a fresh session ID, and responds with a gateway session
// JWT.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionID := uuid.New().String()
	store := client.NewRedisTokenStore(h.Redis, sessionID, h.sessionTTL())
	api := client.New(config.AppConfig.APIBaseURL, store, nil, utils.GetLogger())

	if _, err := auth.NewService(api).Login(c.Request.Context(), input.Email, input.Password); err != nil {
		if client.IsUnauthorized(err) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
			return
		}
		utils.GetLogger().Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "login failed", err.Error())
		return
	}

	sessionToken, err := utils.GenerateSessionToken(sessionID, h.sessionTTL())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"session_token": sessionToken,
			"expires_in":    int(h.sessionTTL().Seconds()),
		},
	})
}

// LogoutHandler discards the session's upstream tokens.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	api := middleware.APIClient(c)
	if err := auth.NewService(api).Logout(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to end session", err.Error())
		return
	}
	if sessionID := c.GetString("sessionID"); sessionID != "" {
		h.Registry.Drop(sessionID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// MeHandler returns the claims of the session's upstream access token.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	api := middleware.APIClient(c)
	claims, err := auth.NewService(api).CurrentUser(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": claims})
}
