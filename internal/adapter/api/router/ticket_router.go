package router

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/adapter/api/handler"
	"ticketboom/internal/adapter/api/middleware"
)

func SetupTicketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	ticketHandler := handler.GetTicketHandler()
	commentHandler := handler.GetCommentHandler()

	tickets := e.Group("/v1/tickets")
	tickets.GET("", ticketHandler.ListTickets)
	tickets.GET("/:id", ticketHandler.GetTicket)
	tickets.GET("/:id/comments", commentHandler.ListComments)

	comments := e.Group("/v1/tickets")
	comments.Use(authMiddleware.Authenticate)
	comments.POST("/:id/comments", commentHandler.AddComment)

	myTickets := e.Group("/v1/my-tickets")
	myTickets.Use(authMiddleware.Authenticate)
	myTickets.Use(authMiddleware.RequireVerifiedEmail)
	myTickets.GET("", ticketHandler.ListMyTickets)
	myTickets.POST("", ticketHandler.CreateTicket)
	myTickets.PATCH("/:id", ticketHandler.UpdateTicket)
	myTickets.DELETE("/:id", ticketHandler.DeleteTicket)
	myTickets.POST("/:id/premium", ticketHandler.RequestPremium)
}
