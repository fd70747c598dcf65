package api

import (
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/gin-gonic/gin"
)

func registerRoutes(engine *gin.Engine, auth *AuthHandler, jobs *JobHandler,
	applications *ApplicationHandler, users *UserHandler, uploads *UploadHandler) {

	api := engine.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", auth.Register)
		authRoutes.POST("/login", auth.Login)
		authRoutes.POST("/logout", auth.Logout)
		authRoutes.GET("/profile", auth.Authenticate(), auth.GetProfile)
		authRoutes.PUT("/profile", auth.Authenticate(), auth.UpdateProfile)
	}

	jobRoutes := api.Group("/jobs")
	{
		jobRoutes.GET("", jobs.List)
		jobRoutes.GET("/sync", jobs.Sync)
		jobRoutes.GET("/:id", jobs.Get)
		jobRoutes.POST("", auth.Authenticate(),
			RequireRoles(models.RoleRecruiter, models.RoleAdmin), jobs.Create)
		jobRoutes.PUT("/:id", auth.Authenticate(),
			RequireRoles(models.RoleRecruiter, models.RoleAdmin), jobs.Update)
		jobRoutes.DELETE("/:id", auth.Authenticate(),
			RequireRoles(models.RoleRecruiter, models.RoleAdmin), jobs.Delete)
	}

	applicationRoutes := api.Group("/applications", auth.Authenticate())
	{
		applicationRoutes.GET("/me", RequireRoles(models.RoleJobseeker), applications.Mine)
		applicationRoutes.GET("/saved", RequireRoles(models.RoleJobseeker), applications.Saved)
		applicationRoutes.DELETE("/saved/:id", RequireRoles(models.RoleJobseeker), applications.Unsave)
		applicationRoutes.POST("/:id/apply", RequireRoles(models.RoleJobseeker), applications.Apply)
		applicationRoutes.POST("/:id/save", RequireRoles(models.RoleJobseeker), applications.Save)
		applicationRoutes.GET("/:id/applicants",
			RequireRoles(models.RoleRecruiter, models.RoleAdmin), applications.Applicants)
		applicationRoutes.PUT("/:id/status",
			RequireRoles(models.RoleRecruiter, models.RoleAdmin), applications.UpdateStatus)
		applicationRoutes.DELETE("/:id", RequireRoles(models.RoleJobseeker), applications.Withdraw)
	}

	userRoutes := api.Group("/users", auth.Authenticate())
	{
		userRoutes.GET("/admin/stats", RequireRoles(models.RoleAdmin), users.AdminStats)
		userRoutes.GET("/recruiter/stats", RequireRoles(models.RoleRecruiter), users.RecruiterStats)
		userRoutes.GET("", RequireRoles(models.RoleAdmin), users.List)
		userRoutes.GET("/:id", RequireRoles(models.RoleAdmin), users.Get)
		userRoutes.DELETE("/:id", RequireRoles(models.RoleAdmin), users.Delete)
	}

	api.POST("/upload", auth.Authenticate(), uploads.UploadResume)
}
