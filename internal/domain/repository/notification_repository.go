package repository

import (
	"context"

	"ticketboom/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	// List returns the feed newest-first.
	List(ctx context.Context) ([]*entity.Notification, error)
	Count(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	// Subscribe delivers the full newest-first feed on every change until the
	// returned stop function is called or ctx is cancelled.
	Subscribe(ctx context.Context, onChange func([]*entity.Notification)) (func(), error)
}
