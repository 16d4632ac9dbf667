package handler

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/usecase"
	"ticketboom/pkg/response"
)

type EmailHandler struct {
	emailUseCase *usecase.EmailUseCase
}

func NewEmailHandler(emailUseCase *usecase.EmailUseCase) *EmailHandler {
	return &EmailHandler{
		emailUseCase: emailUseCase,
	}
}

// SendVerificationEmail mails the caller a verification link. The target
// address comes from the authenticated identity, never from the request body.
func (h *EmailHandler) SendVerificationEmail(c echo.Context) error {
	email, _ := c.Get("email").(string)

	if err := h.emailUseCase.SendVerification(c.Request().Context(), email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}
