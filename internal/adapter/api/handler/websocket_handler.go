package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"hirelink/internal/adapter/api/middleware"
	"hirelink/internal/infrastructure/realtime"
	"hirelink/pkg/errors"
)

type WebSocketHandler struct {
	manager        *realtime.Manager
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict origins before exposing publicly
	},
}

func NewWebSocketHandler(manager *realtime.Manager, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		manager:        manager,
		authMiddleware: authMiddleware,
	}
}

// HandleWebSocket authenticates via the token query parameter, since
// browsers cannot attach headers to WebSocket upgrades, then registers the
// connection for event delivery until it closes.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	userID, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &realtime.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.manager.Register <- client

	go client.ReadPump(h.manager)
	go client.WritePump()

	return nil
}
