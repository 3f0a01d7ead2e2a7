package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campushub/portal/internal/app/controllers"
	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	resourceController *controllers.ResourceController,
	announcementController *controllers.AnnouncementController,
	authMiddleware *middleware.AuthMiddleware,
	uploadsDir string,
) {
	// Swagger and uploaded files live outside the versioned API
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static("/uploads", uploadsDir)

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
	})

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.GET("", jobController.GetJobs)
		jobs.GET("/:id", jobController.GetJob)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		adminUsers := authenticated.Group("/auth/users")
		adminUsers.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminUsers.GET("", authController.ListUsers)
			adminUsers.DELETE("/:id", authController.DeleteUser)
		}

		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)

			// Self access is checked in the handler
			profile.GET("/:id", profileController.GetUserProfile)
		}

		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleFaculty, models.RoleAdmin))
		{
			students.GET("", profileController.GetStudents)
		}

		jobsProtected := authenticated.Group("/jobs")
		{
			jobsAdmin := jobsProtected.Group("")
			jobsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				jobsAdmin.POST("", jobController.CreateJob)
				jobsAdmin.DELETE("/:id", jobController.DeleteJob)
			}

			jobsStudent := jobsProtected.Group("")
			jobsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				jobsStudent.POST("/:id/apply", jobController.Apply)
			}
		}

		applications := authenticated.Group("/applications")
		{
			applications.GET("/my", applicationController.GetMyApplications)

			applicationsAdmin := applications.Group("")
			applicationsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				applicationsAdmin.GET("", applicationController.GetApplications)
				applicationsAdmin.PUT("/:id", applicationController.UpdateStatus)
				applicationsAdmin.DELETE("/:id", applicationController.DeleteApplication)
			}
		}

		resources := authenticated.Group("/resources")
		{
			resources.GET("", resourceController.GetResources)
			resources.POST("", resourceController.CreateResource)
			resources.DELETE("/:id", resourceController.DeleteResource)
		}

		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.GetAnnouncements)

			announcementsStaff := announcements.Group("")
			announcementsStaff.Use(authMiddleware.RoleRequired(models.RoleFaculty, models.RoleAdmin))
			{
				announcementsStaff.POST("", announcementController.CreateAnnouncement)
			}

			announcementsAdmin := announcements.Group("")
			announcementsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				announcementsAdmin.DELETE("/:id", announcementController.DeleteAnnouncement)
			}
		}
	}
}
