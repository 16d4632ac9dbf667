package usecase

import (
	"context"
	"strings"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/domain/repository"
	"ticketboom/pkg/errors"
)

type TicketUseCase struct {
	ticketRepo repository.TicketRepository
}

func NewTicketUseCase(ticketRepo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{
		ticketRepo: ticketRepo,
	}
}

type CreateTicketInput struct {
	ConcertName string  `json:"concert_name"`
	City        string  `json:"city"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Contact     string  `json:"contact"`
}

type UpdateTicketInput struct {
	Price   *float64 `json:"price"`
	Contact *string  `json:"contact"`
}

type TicketFilter struct {
	Search   string
	City     string
	MinPrice float64
	MaxPrice float64
}

func (uc *TicketUseCase) CreateTicket(ctx context.Context, ownerEmail string, input CreateTicketInput) (*entity.Ticket, error) {
	if strings.TrimSpace(input.ConcertName) == "" {
		return nil, errors.BadRequest("Event name is required", nil)
	}
	if strings.TrimSpace(input.City) == "" {
		return nil, errors.BadRequest("City is required", nil)
	}
	if strings.TrimSpace(input.Date) == "" {
		return nil, errors.BadRequest("Date is required", nil)
	}
	if strings.TrimSpace(input.Contact) == "" {
		return nil, errors.BadRequest("Contact is required", nil)
	}
	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than zero", nil)
	}

	ticket := &entity.Ticket{
		ConcertName: strings.TrimSpace(input.ConcertName),
		City:        strings.TrimSpace(input.City),
		Date:        strings.TrimSpace(input.Date),
		Price:       input.Price,
		Contact:     strings.TrimSpace(input.Contact),
		UserEmail:   ownerEmail,
	}

	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (uc *TicketUseCase) GetTicketByID(ctx context.Context, id string) (*entity.Ticket, error) {
	return uc.ticketRepo.GetByID(ctx, id)
}

func (uc *TicketUseCase) ListTickets(ctx context.Context, filter TicketFilter) ([]*entity.Ticket, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var matched []*entity.Ticket
	for _, ticket := range tickets {
		if search != "" &&
			!strings.Contains(strings.ToLower(ticket.ConcertName), search) &&
			!strings.Contains(strings.ToLower(ticket.City), search) {
			continue
		}
		if filter.City != "" && ticket.City != filter.City {
			continue
		}
		if filter.MinPrice > 0 && ticket.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && ticket.Price > filter.MaxPrice {
			continue
		}
		matched = append(matched, ticket)
	}

	return matched, nil
}

func (uc *TicketUseCase) ListMyTickets(ctx context.Context, ownerEmail string) ([]*entity.Ticket, error) {
	return uc.ticketRepo.ListByOwner(ctx, ownerEmail)
}

func (uc *TicketUseCase) UpdateTicket(ctx context.Context, id, ownerEmail string, input UpdateTicketInput) (*entity.Ticket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ticket.UserEmail != ownerEmail {
		return nil, errors.Forbidden("You don't have permission to update this ticket", nil)
	}

	fields := make(map[string]interface{})
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, errors.BadRequest("Price must be greater than zero", nil)
		}
		fields["price"] = *input.Price
		ticket.Price = *input.Price
	}
	if input.Contact != nil {
		if strings.TrimSpace(*input.Contact) == "" {
			return nil, errors.BadRequest("Contact is required", nil)
		}
		fields["contact"] = strings.TrimSpace(*input.Contact)
		ticket.Contact = fields["contact"].(string)
	}

	if len(fields) == 0 {
		return ticket, nil
	}

	if err := uc.ticketRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (uc *TicketUseCase) DeleteTicket(ctx context.Context, id, ownerEmail string) error {
	ticket, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if ticket.UserEmail != ownerEmail {
		return errors.Forbidden("You don't have permission to delete this ticket", nil)
	}

	return uc.ticketRepo.HardDelete(ctx, id)
}

// Admin actions.

func (uc *TicketUseCase) AdminMakePremium(ctx context.Context, id string) error {
	return uc.ticketRepo.ApprovePremium(ctx, id)
}

func (uc *TicketUseCase) AdminRemoveTicket(ctx context.Context, id string) error {
	if _, err := uc.ticketRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.ticketRepo.SoftDelete(ctx, id)
}
