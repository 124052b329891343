package router

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/handler"
	"hirelink/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	// Public routes
	e.POST("/v1/auth/register", userHandler.Register)
	e.GET("/v1/users/:id", userHandler.GetUser)

	// Protected routes
	protected := e.Group("/v1/users")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", userHandler.GetMyProfile)
	protected.PATCH("/me", userHandler.UpdateMyProfile)
}
