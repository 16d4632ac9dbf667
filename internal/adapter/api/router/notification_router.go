package router

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/adapter/api/handler"
)

func SetupNotificationRouter(e *echo.Echo) {
	notificationHandler := handler.GetNotificationHandler()

	// The feed is a global broadcast; reading it and flipping the shared
	// read flag need no authentication, matching the web client.
	notifications := e.Group("/v1/notifications")
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.POST("/:id/read", notificationHandler.MarkRead)
}
