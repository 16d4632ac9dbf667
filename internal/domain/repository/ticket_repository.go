package repository

import (
	"context"

	"ticketboom/internal/domain/entity"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	// List returns all tickets that are not soft-deleted.
	List(ctx context.Context) ([]*entity.Ticket, error)
	// ListByOwner returns the owner's tickets, soft-deleted ones included.
	ListByOwner(ctx context.Context, email string) ([]*entity.Ticket, error)
	// Update merges the given fields into the document; untouched fields keep
	// their values.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error

	// SetPremiumPending opens a premium request on the listing. A chatID of
	// zero leaves the listing unbound (web-originated request); otherwise the
	// chat is recorded so the decision can be routed back.
	SetPremiumPending(ctx context.Context, id string, chatID int64) error
	// ClearPremiumPending returns the listing to its idle state, dropping the
	// chat binding.
	ClearPremiumPending(ctx context.Context, id string) error
	// FindPendingByChat returns tickets with an open premium request bound to
	// the given chat.
	FindPendingByChat(ctx context.Context, chatID int64) ([]*entity.Ticket, error)
	// ApprovePremium flips the listing to premium only if it still exists.
	// Approving an already-premium listing is a no-op, so a doubled decision
	// never errors.
	ApprovePremium(ctx context.Context, id string) error
	// ApprovePremiumIfPending flips the listing to premium only while its
	// premium request is still open. An already-premium listing is the
	// harmless double-click, a no-op; an idle listing (request withdrawn by a
	// rejection) returns a CONFLICT so a stale approve press cannot promote.
	ApprovePremiumIfPending(ctx context.Context, id string) error
}
