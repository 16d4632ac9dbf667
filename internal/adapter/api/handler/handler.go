package handler

import (
	"ticketboom/internal/usecase"
)

var (
	ticketHandler       *TicketHandler
	commentHandler      *CommentHandler
	notificationHandler *NotificationHandler
	adminHandler        *AdminHandler
	emailHandler        *EmailHandler
)

func Setup(
	ticketUseCase *usecase.TicketUseCase,
	commentUseCase *usecase.CommentUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	premiumUseCase *usecase.PremiumUseCase,
	emailUseCase *usecase.EmailUseCase,
) {
	ticketHandler = NewTicketHandler(ticketUseCase, premiumUseCase)
	commentHandler = NewCommentHandler(commentUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	adminHandler = NewAdminHandler(ticketUseCase)
	emailHandler = NewEmailHandler(emailUseCase)
}

func GetTicketHandler() *TicketHandler {
	return ticketHandler
}

func GetCommentHandler() *CommentHandler {
	return commentHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetEmailHandler() *EmailHandler {
	return emailHandler
}
