package router

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupUserRouter(e, authMiddleware)
	SetupServiceRouter(e, authMiddleware)
	SetupJobPostRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupSyncRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
