package router

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/handler"
	"hirelink/internal/adapter/api/middleware"
)

func SetupServiceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	serviceHandler := handler.GetServiceHandler()
	reviewHandler := handler.GetReviewHandler()

	// Public browsing
	e.GET("/v1/services", serviceHandler.ListServices)
	e.GET("/v1/services/:id", serviceHandler.GetService)
	e.GET("/v1/services/:id/reviews", reviewHandler.ListReviews)
	e.GET("/v1/users/:id/services", serviceHandler.ListProviderServices)

	// Protected routes
	protected := e.Group("/v1/services")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", serviceHandler.CreateService)
	protected.GET("/my", serviceHandler.ListMyServices)
	protected.PUT("/:id", serviceHandler.UpdateService)
	protected.DELETE("/:id", serviceHandler.DeleteService)
	protected.POST("/:id/reviews", reviewHandler.SubmitReview)
}
