package app

import (
	"road_scholar_backend/internal/config"
	"road_scholar_backend/internal/middleware"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "road_scholar_backend/docs"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	registerAuthRoutes(router, c)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	registerLearnerRoutes(api, c)

	staff := api.Group("")
	staff.Use(middleware.RoleMiddleware(model.Faculty))
	registerStaffRoutes(staff, c)

	admin := api.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	admin.DELETE("/users/:id", c.user.DeleteUser)
}

func registerAuthRoutes(router *gin.Engine, c *controllers) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.auth.Register)
		auth.POST("/login", c.auth.Login)
		auth.POST("/register/google", c.auth.RegisterWithGoogle)
		auth.POST("/login/google", c.auth.LoginWithGoogle)
	}
}

// registerLearnerRoutes holds everything any signed-in user may call.
func registerLearnerRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/auth/me", c.auth.Me)

	user := api.Group("/user")
	{
		user.GET("/achievements", c.achievement.GetAchievements)
		user.PUT("/update", c.user.UpdateProfile)
		user.POST("/avatar", c.user.UploadAvatar)
	}

	modules := api.Group("/modules")
	{
		modules.GET("", c.module.ListModules)
		modules.GET("/:id", c.module.GetModule)
	}

	lessons := api.Group("/lessons")
	{
		lessons.GET("", c.lesson.ListLessons)
		lessons.GET("/:id", c.lesson.GetLesson)
		lessons.POST("/track/:id", c.lesson.TrackLesson)
	}

	activities := api.Group("/activities")
	{
		activities.GET("", c.activity.ListActivities)
		activities.GET("/:id", c.activity.GetActivity)
		activities.POST("/submit/:id", c.activity.SubmitAnswers)
	}

	history := api.Group("/activity-history")
	{
		history.GET("", c.history.ListHistory)
		history.GET("/leaderboards", c.history.Leaderboard)
		history.GET("/engagements", c.history.Engagement)
		history.GET("/getTotalModuleHours", c.history.TotalModuleHours)
		history.GET("/user/:userId", c.history.ListUserHistory)
		history.GET("/:id", c.history.GetHistory)
	}

	questions := api.Group("/questions")
	{
		questions.GET("", c.question.ListQuestions)
		questions.GET("/:id", c.question.GetQuestion)
	}

	choices := api.Group("/choices")
	{
		choices.GET("", c.question.ListChoices)
		choices.GET("/:id", c.question.GetChoice)
	}

	bookmarks := api.Group("/bookmark")
	{
		bookmarks.GET("", c.bookmark.ListBookmarks)
		bookmarks.POST("/:id", c.bookmark.ToggleBookmark)
	}

	feedback := api.Group("/feedback")
	{
		feedback.GET("", c.feedback.ListFeedback)
		feedback.GET("/:id", c.feedback.GetFeedback)
		feedback.POST("", c.feedback.CreateFeedback)
		feedback.PUT("/:id", c.feedback.UpdateFeedback)
		feedback.DELETE("/:id", c.feedback.DeleteFeedback)
	}
}

// registerStaffRoutes holds catalogue writes and history corrections for faculty and admins.
func registerStaffRoutes(staff *gin.RouterGroup, c *controllers) {
	staff.POST("/modules", c.module.CreateModule)
	staff.PUT("/modules/:id", c.module.UpdateModule)
	staff.DELETE("/modules/:id", c.module.DeleteModule)
	staff.POST("/modules/:id/image", c.module.UploadImage)

	staff.POST("/lessons", c.lesson.CreateLesson)
	staff.PUT("/lessons/:id", c.lesson.UpdateLesson)
	staff.DELETE("/lessons/:id", c.lesson.DeleteLesson)
	staff.POST("/lessons/:id/media", c.lesson.UploadMedia)

	staff.POST("/activities", c.activity.CreateActivity)
	staff.PUT("/activities/:id", c.activity.UpdateActivity)
	staff.DELETE("/activities/:id", c.activity.DeleteActivity)

	staff.POST("/questions", c.question.CreateQuestion)
	staff.PUT("/questions/:id", c.question.UpdateQuestion)
	staff.DELETE("/questions/:id", c.question.DeleteQuestion)
	staff.POST("/questions/:id/image", c.question.UploadImage)

	staff.POST("/choices", c.question.CreateChoice)
	staff.PUT("/choices/:id", c.question.UpdateChoice)
	staff.DELETE("/choices/:id", c.question.DeleteChoice)

	staff.PUT("/activity-history/:id", c.history.UpdateHistory)
	staff.DELETE("/activity-history/:id", c.history.DeleteHistory)
}
