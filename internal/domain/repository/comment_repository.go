package repository

import (
	"context"

	"ticketboom/internal/domain/entity"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	// ListByTicket returns the thread in creation order.
	ListByTicket(ctx context.Context, ticketID string) ([]*entity.Comment, error)
	// Subscribe delivers the full ordered thread on every change until the
	// returned stop function is called or ctx is cancelled.
	Subscribe(ctx context.Context, ticketID string, onChange func([]*entity.Comment)) (func(), error)
}
