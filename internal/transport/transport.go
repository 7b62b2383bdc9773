package transport

import (
	"net/http"
	"time"

	"github.com/eventsphere/server/internal/service"
	"github.com/eventsphere/server/internal/session"
	"github.com/eventsphere/server/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Events        *EventHandler
	Registrations *RegistrationHandler
	Notifications *NotificationHandler
	Analytics     *AnalyticsHandler
}

func InitRoutes(h *Handlers, sessions session.Store, users service.UserService, requestTimeout time.Duration) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(middleware.SessionAuth(sessions, users))

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", middleware.RequireAuth(), h.Auth.Logout)
			auth.GET("/session", h.Auth.Session)
		}

		usersGroup := api.Group("/users")
		{
			usersGroup.POST("", h.Users.Register)
			usersGroup.GET("/:id", middleware.RequireAuth(), h.Users.GetUser)
			usersGroup.PUT("/:id", middleware.RequireAuth(), h.Users.UpdateUser)
		}

		events := api.Group("/events")
		{
			events.GET("", h.Events.ListEvents)
			events.GET("/:id", h.Events.GetEvent)
			events.POST("", middleware.RequireEventManager(), h.Events.CreateEvent)
			events.PUT("/:id", middleware.RequireEventManager(), h.Events.UpdateEvent)
			events.DELETE("/:id", middleware.RequireEventManager(), h.Events.DeleteEvent)
			events.GET("/category/:category", h.Events.GetEventsByCategory)
			events.GET("/organizer/:id", h.Events.GetEventsByOrganizer)
		}

		registrations := api.Group("/registrations", middleware.RequireAuth())
		{
			registrations.POST("", h.Registrations.Register)
			registrations.GET("/user", h.Registrations.GetUserRegistrations)
			registrations.GET("/event/:id", h.Registrations.GetEventRegistrations)
			registrations.DELETE("/:id", h.Registrations.CancelRegistration)
			registrations.PUT("/:id/attended", h.Registrations.MarkAttended)
		}

		notifications := api.Group("/notifications", middleware.RequireAuth())
		{
			notifications.GET("", h.Notifications.GetNotifications)
			notifications.PUT("/:id/read", h.Notifications.MarkAsRead)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/user", middleware.RequireAuth(), h.Analytics.GetUserStats)
			analytics.GET("/event/:id", middleware.RequireEventManager(), h.Analytics.GetEventStats)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
