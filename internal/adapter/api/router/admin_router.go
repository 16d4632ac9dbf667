package router

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/adapter/api/handler"
	"ticketboom/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin/tickets")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/:id/premium", adminHandler.MakePremium)
	admin.DELETE("/:id", adminHandler.RemoveTicket)
}
