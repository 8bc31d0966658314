package app

import (
	"recruiting_backend/docs"
	"recruiting_backend/internal/config"
	"recruiting_backend/internal/middleware"
	"recruiting_backend/internal/model"
	"recruiting_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerAthleteRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerAthleteRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)

	// Reads are open to parents observing their athlete; writes are
	// athlete-only.
	rg.GET("/schools", c.school.ListSchools)
	rg.GET("/schools/:id", c.school.GetSchool)
	rg.GET("/schools/:id/coaches", c.school.ListCoaches)
	rg.GET("/interactions", c.interaction.ListInteractions)
	rg.GET("/tasks", c.task.ListTasks)
	rg.GET("/events", c.event.ListEvents)
	rg.GET("/videos", c.video.ListVideos)
	rg.GET("/suggestions", c.suggestion.ListSuggestions)
	rg.GET("/recovery/plan", c.recovery.GetRecoveryPlan)

	athleteOnly := rg.Group("/")
	athleteOnly.Use(middleware.RoleMiddleware(model.Athlete))
	{
		athleteOnly.POST("/schools", c.school.CreateSchool)
		athleteOnly.PUT("/schools/:id", c.school.UpdateSchool)
		athleteOnly.DELETE("/schools/:id", c.school.DeleteSchool)
		athleteOnly.POST("/schools/:id/coaches", c.school.AddCoach)

		athleteOnly.POST("/interactions", c.interaction.LogInteraction)
		athleteOnly.DELETE("/interactions/:id", c.interaction.DeleteInteraction)

		athleteOnly.PUT("/tasks/:id/status", c.task.UpdateTaskStatus)

		athleteOnly.POST("/events", c.event.CreateEvent)
		athleteOnly.PUT("/events/:id", c.event.UpdateEvent)
		athleteOnly.DELETE("/events/:id", c.event.DeleteEvent)

		athleteOnly.POST("/videos", c.video.UploadVideo)
		athleteOnly.DELETE("/videos/:id", c.video.DeleteVideo)

		athleteOnly.POST("/suggestions/:id/dismiss", c.suggestion.DismissSuggestion)
		athleteOnly.POST("/suggestions/:id/complete", c.suggestion.CompleteSuggestion)
		athleteOnly.POST("/suggestions/surface-more", c.suggestion.SurfaceMore)
		athleteOnly.POST("/suggestions/evaluate", c.suggestion.Evaluate)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/athletes", c.user.ListAthletes)
		admin.POST("/suggestions/evaluate", c.suggestion.EvaluateAll)
	}
}
