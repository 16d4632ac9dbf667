package router

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/adapter/api/handler"
	"ticketboom/internal/adapter/api/middleware"
)

func SetupEmailRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	emailHandler := handler.GetEmailHandler()

	// Authenticated but deliberately not gated on a verified address: this
	// endpoint is how an address gets verified in the first place.
	email := e.Group("/v1/email")
	email.Use(authMiddleware.Authenticate)
	email.POST("/verification", emailHandler.SendVerificationEmail)
}
