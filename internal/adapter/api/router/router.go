package router

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/adapter/api/handler"
	"ticketboom/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, wsHandler *handler.WebSocketHandler) {
	SetupTicketRouter(e, authMiddleware)
	SetupNotificationRouter(e)
	SetupEmailRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
	SetupWebSocketRouter(e, wsHandler)
}
