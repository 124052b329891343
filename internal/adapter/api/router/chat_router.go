package router

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/handler"
	"hirelink/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()
	groupChatHandler := handler.GetGroupChatHandler()

	// Direct conversations
	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)

	conversations.POST("", chatHandler.StartConversation)
	conversations.GET("", chatHandler.ListConversations)
	conversations.GET("/:id", chatHandler.GetConversation)
	conversations.GET("/:id/messages", chatHandler.ListMessages)
	conversations.POST("/:id/messages", chatHandler.SendMessage)
	conversations.PUT("/:id/read", chatHandler.MarkRead)

	// Community room
	group := e.Group("/v1/group-chat")
	group.Use(authMiddleware.Authenticate)

	group.GET("/messages", groupChatHandler.ListMessages)
	group.POST("/messages", groupChatHandler.SendMessage)
}
