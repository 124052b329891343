package router

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/handler"
	"hirelink/internal/adapter/api/middleware"
)

func SetupSyncRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	syncHandler := handler.GetSyncHandler()

	// Search is public; the gateway endpoints require the listing owner's
	// token.
	e.GET("/v1/search", syncHandler.Search)

	sync := e.Group("/v1/sync")
	sync.Use(authMiddleware.Authenticate)

	sync.POST("", syncHandler.CreateOrUpdate)
	sync.DELETE("", syncHandler.Delete)
	sync.POST("/provider", syncHandler.UpdateProvider)
}
