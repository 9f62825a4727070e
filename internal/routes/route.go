package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/inviteleaf/api/internal/container"
	"github.com/inviteleaf/api/internal/handlers"
	"github.com/inviteleaf/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "inviteleaf-api",
			})
		})

		// public routes
		v1.POST("/login", handlers.Login(container.AuthService))
		v1.POST("/logout", handlers.Logout())
	}

	// Public invitation surface, addressed by slug.
	inviteRoutes := v1.Group("/invite")
	{
		inviteRoutes.GET("/:slug", handlers.GetInvite(container.InviteService))
		inviteRoutes.GET("/:slug/blessings", handlers.ListBlessings(container.BlessingService, container.ClientService))
		inviteRoutes.POST("/:slug/blessings", handlers.SubmitBlessing(container.BlessingService, container.ClientService))
		inviteRoutes.POST("/:slug/rsvp", handlers.SubmitRSVP(container.RSVPService, container.ClientService))
		inviteRoutes.GET("/:slug/live", handlers.LiveBlessings(container.InviteService, container.Hub, container.Logger))
	}

	protected := v1.Group("/admin")
	protected.Use(middleware.AuthMiddleware(container.AuthService, container.Logger))

	clientRoutes := protected.Group("/clients")
	{
		clientRoutes.GET("/", handlers.ListClients(container.ClientService))
		clientRoutes.POST("/", handlers.CreateClient(container.ClientService))
		clientRoutes.GET("/:id", handlers.GetClient(container.ClientService))
		clientRoutes.PATCH("/:id", handlers.UpdateClient(container.ClientService))

		clientRoutes.GET("/:id/ceremonies", handlers.ListCeremoniesForEdit(container.CeremonyService))
		clientRoutes.PUT("/:id/ceremonies", handlers.SaveCeremonies(container.CeremonyService))

		clientRoutes.GET("/:id/photos", handlers.ListPhotos(container.PhotoService))
		clientRoutes.POST("/:id/photos", handlers.UploadPhotos(container.PhotoService, container.ClientService, container.Logger))

		clientRoutes.GET("/:id/rsvps", handlers.ListRSVPs(container.RSVPService))
		clientRoutes.GET("/:id/visits", handlers.GetVisitCount(container.InviteService))
	}

	protected.DELETE("/ceremonies/:id", handlers.DeleteCeremony(container.CeremonyService))
	protected.GET("/event-types", handlers.ListEventTypes())

	settingsRoutes := protected.Group("/settings")
	{
		settingsRoutes.GET("/", handlers.GetSettings(container.SettingsService))
		settingsRoutes.PUT("/", handlers.SaveSettings(container.SettingsService))
	}

	return r
}
