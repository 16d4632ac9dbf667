package handler

import (
	"github.com/labstack/echo/v4"

	"ticketboom/internal/usecase"
	"ticketboom/pkg/response"
)

type AdminHandler struct {
	ticketUseCase *usecase.TicketUseCase
}

func NewAdminHandler(ticketUseCase *usecase.TicketUseCase) *AdminHandler {
	return &AdminHandler{
		ticketUseCase: ticketUseCase,
	}
}

// MakePremium lets an administrator promote a listing directly, bypassing the
// receipt flow.
func (h *AdminHandler) MakePremium(c echo.Context) error {
	if err := h.ticketUseCase.AdminMakePremium(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "premium"})
}

// RemoveTicket soft-deletes a listing; the document stays in the store.
func (h *AdminHandler) RemoveTicket(c echo.Context) error {
	if err := h.ticketUseCase.AdminRemoveTicket(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "removed"})
}
