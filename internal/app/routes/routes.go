package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/controllers"
	"github.com/yigit/tnp/internal/middleware"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Company      *controllers.CompanyController
	Job          *controllers.JobController
	Application  *controllers.ApplicationController
	Announcement *controllers.AnnouncementController
	Analytic     *controllers.AnalyticController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes. authLimiter guards the
// public auth endpoints and may be nil.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	authLimiter gin.HandlerFunc,
) {
	if ctrl.Health != nil {
		router.GET("/ping", ctrl.Health.Ping)
		router.GET("/health", ctrl.Health.Health)
	}

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	authGroup := v1.Group("/auth")
	if authLimiter != nil {
		authGroup.Use(authLimiter)
	}
	{
		authGroup.POST("/admin/login", ctrl.Auth.AdminLogin)
		authGroup.POST("/student/login", ctrl.Auth.StudentLogin)
		authGroup.POST("/student/register", ctrl.Auth.RegisterStudent)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	require := authMiddleware.Require

	students := authenticated.Group("/students/me", require(auth.ActionOwnProfile))
	{
		students.GET("", ctrl.Student.GetMe)
		students.PUT("", ctrl.Student.UpdateMe)
		students.POST("/profile-image", ctrl.Student.UploadProfileImage)
	}

	companies := authenticated.Group("/companies")
	{
		companies.GET("", require(auth.ActionReadCompany), ctrl.Company.ListCompanies)
		companies.GET("/:id", require(auth.ActionReadCompany), ctrl.Company.GetCompany)
		companies.POST("", require(auth.ActionManageCompany), ctrl.Company.CreateCompany)
		companies.PUT("/:id", require(auth.ActionManageCompany), ctrl.Company.UpdateCompany)
		companies.DELETE("/:id", require(auth.ActionManageCompany), ctrl.Company.DeleteCompany)
	}

	jobs := authenticated.Group("/jobs")
	{
		jobs.GET("/filter", require(auth.ActionBrowseJobs), ctrl.Job.FilterJobs)
		jobs.GET("", require(auth.ActionBrowseJobs, auth.ActionManageJob), ctrl.Job.ListJobs)
		jobs.GET("/:id", require(auth.ActionBrowseJobs, auth.ActionManageJob), ctrl.Job.GetJob)
		jobs.POST("", require(auth.ActionManageJob), ctrl.Job.CreateJob)
		jobs.PUT("/:id", require(auth.ActionManageJob), ctrl.Job.UpdateJob)
		jobs.DELETE("/:id", require(auth.ActionManageJob), ctrl.Job.DeleteJob)
	}

	applications := authenticated.Group("/applications")
	{
		applications.POST("/apply", require(auth.ActionApply), ctrl.Application.Apply)
		applications.GET("/me", require(auth.ActionReadOwnApplication), ctrl.Application.ListMine)
		applications.GET("", require(auth.ActionManageApplication), ctrl.Application.List)
		applications.POST("", require(auth.ActionManageApplication), ctrl.Application.Create)
		applications.GET("/job/:jobId", require(auth.ActionManageApplication), ctrl.Application.ListByJob)
		applications.PUT("/:id/status", require(auth.ActionManageApplication), ctrl.Application.UpdateStatus)
		applications.PATCH("/:id/status", require(auth.ActionManageApplication), ctrl.Application.UpdateStatus)
	}

	announcements := authenticated.Group("/announcements")
	{
		announcements.GET("", require(auth.ActionReadAnnouncement), ctrl.Announcement.ListAnnouncements)
		announcements.GET("/:id", require(auth.ActionReadAnnouncement), ctrl.Announcement.GetAnnouncement)
		announcements.POST("", require(auth.ActionManageAnnouncement), ctrl.Announcement.CreateAnnouncement)
		announcements.PATCH("/:id", require(auth.ActionManageAnnouncement), ctrl.Announcement.UpdateAnnouncement)
		announcements.DELETE("/:id", require(auth.ActionManageAnnouncement), ctrl.Announcement.DeleteAnnouncement)
	}

	analytics := authenticated.Group("/analytics", require(auth.ActionManageAnalytic))
	{
		analytics.POST("", ctrl.Analytic.CreateAnalytic)
		analytics.GET("", ctrl.Analytic.ListAnalytics)
		analytics.GET("/:jobId", ctrl.Analytic.GetAnalytic)
		analytics.PUT("/:jobId", ctrl.Analytic.UpdateAnalytic)
		analytics.DELETE("/:jobId", ctrl.Analytic.DeleteAnalytic)
	}
}
