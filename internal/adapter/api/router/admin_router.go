package router

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/handler"
	"hirelink/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/services/:id", adminHandler.RemoveService)
	admin.DELETE("/jobs/:id", adminHandler.RemoveJobPost)
}
