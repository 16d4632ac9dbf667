package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ticketboom/internal/usecase"
	"ticketboom/pkg/errors"
	"ticketboom/pkg/response"
)

type TicketHandler struct {
	ticketUseCase  *usecase.TicketUseCase
	premiumUseCase *usecase.PremiumUseCase
}

func NewTicketHandler(ticketUseCase *usecase.TicketUseCase, premiumUseCase *usecase.PremiumUseCase) *TicketHandler {
	return &TicketHandler{
		ticketUseCase:  ticketUseCase,
		premiumUseCase: premiumUseCase,
	}
}

type createTicketRequest struct {
	ConcertName string  `json:"concert_name" validate:"required"`
	City        string  `json:"city" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Contact     string  `json:"contact" validate:"required"`
}

type updateTicketRequest struct {
	Price   *float64 `json:"price"`
	Contact *string  `json:"contact"`
}

func (h *TicketHandler) ListTickets(c echo.Context) error {
	minPrice, err := priceParam(c, "min_price")
	if err != nil {
		return response.Error(c, err)
	}
	maxPrice, err := priceParam(c, "max_price")
	if err != nil {
		return response.Error(c, err)
	}

	tickets, err := h.ticketUseCase.ListTickets(c.Request().Context(), usecase.TicketFilter{
		Search:   c.QueryParam("search"),
		City:     c.QueryParam("city"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tickets)
}

func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticket, err := h.ticketUseCase.GetTicketByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}

func (h *TicketHandler) ListMyTickets(c echo.Context) error {
	email := c.Get("email").(string)

	tickets, err := h.ticketUseCase.ListMyTickets(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tickets)
}

func (h *TicketHandler) CreateTicket(c echo.Context) error {
	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	email := c.Get("email").(string)

	ticket, err := h.ticketUseCase.CreateTicket(c.Request().Context(), email, usecase.CreateTicketInput{
		ConcertName: req.ConcertName,
		City:        req.City,
		Date:        req.Date,
		Price:       req.Price,
		Contact:     req.Contact,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ticket)
}

func (h *TicketHandler) UpdateTicket(c echo.Context) error {
	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	email := c.Get("email").(string)

	ticket, err := h.ticketUseCase.UpdateTicket(c.Request().Context(), c.Param("id"), email, usecase.UpdateTicketInput{
		Price:   req.Price,
		Contact: req.Contact,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}

func (h *TicketHandler) DeleteTicket(c echo.Context) error {
	email := c.Get("email").(string)

	if err := h.ticketUseCase.DeleteTicket(c.Request().Context(), c.Param("id"), email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func priceParam(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, errors.BadRequest(name+" must be a non-negative number", err)
	}
	return value, nil
}

// RequestPremium opens the web leg of the premium workflow: the listing is
// marked pending and the owner is pointed at the bot to submit the receipt.
func (h *TicketHandler) RequestPremium(c echo.Context) error {
	email := c.Get("email").(string)

	ticket, err := h.premiumUseCase.RequestViaWeb(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"ticket":      ticket,
		"bot_link":    "https://t.me/" + h.premiumUseCase.BotUsername(),
		"instruction": "Message the bot with your TicketID and send the payment receipt photo.",
	})
}
