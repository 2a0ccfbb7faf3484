package middleware

import (
	"net/http"
	"strings"
	"time"

	"roombook/client"
	"roombook/config"
	"roombook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const apiClientKey = "apiClient"

// SessionAuthMiddleware validates the gateway session JWT, resolves the
// session ID it carries, and attaches that session's upstream client to the
// request context. Clients come from a shared registry so concurrent requests
// in one session share a single refresh state machine.
func SessionAuthMiddleware(redisClient *redis.Client, registry *client.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := utils.ExtractSessionID(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		api := registry.GetOrCreate(sessionID, func() *client.Client {
			ttl := time.Duration(config.AppConfig.SessionTTL) * time.Hour
			store := client.NewRedisTokenStore(redisClient, sessionID, ttl)
			return client.New(config.AppConfig.APIBaseURL, store, nil, utils.GetLogger())
		})

		c.Set("sessionID", sessionID)
		c.Set(apiClientKey, api)
		c.Next()
	}
}

// APIClient returns the per-session upstream client set by
// SessionAuthMiddleware.
func APIClient(c *gin.Context) *client.Client {
	v, ok := c.Get(apiClientKey)
	if !ok {
		return nil
	}
	api, _ := v.(*client.Client)
	return api
}
