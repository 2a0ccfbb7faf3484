package routes

import (
	"net/http"
	"time"

	"roombook/client"
	"roombook/handlers"
	"roombook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the gateway's handlers and the shared session
// infrastructure the middleware needs.
type HandlerBundle struct {
	Redis    *redis.Client
	Registry *client.Registry

	Auth         *handlers.AuthHandler
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Room         *handlers.RoomHandler
	User         *handlers.UserHandler
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "roombook gateway"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	v1 := r.Group("/v1")
	v1.POST("/auth/login", hb.Auth.LoginHandler)

	// Protected routes (Require Authentication)
	protected := v1.Group("")
	protected.Use(middleware.SessionAuthMiddleware(hb.Redis, hb.Registry))

	protected.POST("/auth/logout", hb.Auth.LogoutHandler)
	protected.GET("/auth/me", hb.Auth.MeHandler)

	protected.GET("/availability", hb.Availability.GetAvailabilityHandler)
	protected.GET("/availability/dates", hb.Availability.GetDatesHandler)

	protected.GET("/rooms", hb.Room.ListRoomsHandler)
	protected.GET("/rooms/:id", hb.Room.GetRoomHandler)
	protected.POST("/rooms", hb.Room.CreateRoomHandler)
	protected.PATCH("/rooms/:id", hb.Room.UpdateRoomHandler)
	protected.DELETE("/rooms/:id", hb.Room.DeleteRoomHandler)

	protected.GET("/bookings", hb.Booking.ListBookingsHandler)
	protected.GET("/bookings/mybookings", hb.Booking.ListMyBookingsHandler)
	protected.GET("/bookings/:id", hb.Booking.GetBookingHandler)
	protected.POST("/bookings", hb.Booking.CreateBookingHandler)
	protected.PATCH("/bookings/:id", hb.Booking.UpdateBookingHandler)
	protected.DELETE("/bookings/:id", hb.Booking.DeleteBookingHandler)

	protected.GET("/users", hb.User.ListUsersHandler)
	protected.GET("/users/:id", hb.User.GetUserHandler)
	protected.POST("/users", hb.User.CreateUserHandler)
	protected.PATCH("/users/:id", hb.User.UpdateUserHandler)
	protected.DELETE("/users/:id", hb.User.DeleteUserHandler)
}
