package router

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/handler"
	"hirelink/internal/adapter/api/middleware"
)

func SetupJobPostRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	jobPostHandler := handler.GetJobPostHandler()

	// Public browsing
	e.GET("/v1/jobs", jobPostHandler.ListJobPosts)
	e.GET("/v1/jobs/:id", jobPostHandler.GetJobPost)

	// Protected routes
	protected := e.Group("/v1/jobs")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", jobPostHandler.CreateJobPost)
	protected.GET("/my", jobPostHandler.ListMyJobPosts)
	protected.PUT("/:id", jobPostHandler.UpdateJobPost)
	protected.DELETE("/:id", jobPostHandler.DeleteJobPost)
	protected.POST("/:id/proposals", jobPostHandler.SubmitProposal)
}
