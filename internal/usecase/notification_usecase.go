package usecase

import (
	"context"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/domain/repository"
)

var defaultNotifications = []string{
	"Welcome to TicketBoom! 🎉",
	"Your ticket was published successfully ✅",
}

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// SeedIfEmpty writes the default feed entries, but only when the collection
// holds nothing at all; calling it again is a no-op.
func (uc *NotificationUseCase) SeedIfEmpty(ctx context.Context) error {
	count, err := uc.notificationRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, text := range defaultNotifications {
		notification := &entity.Notification{
			Text: text,
			Read: false,
		}
		if err := uc.notificationRepo.Create(ctx, notification); err != nil {
			return err
		}
	}

	return nil
}

// ListNotifications seeds the feed on first empty read, then returns it
// newest-first.
func (uc *NotificationUseCase) ListNotifications(ctx context.Context) ([]*entity.Notification, error) {
	if err := uc.SeedIfEmpty(ctx); err != nil {
		return nil, err
	}
	return uc.notificationRepo.List(ctx)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.notificationRepo.MarkRead(ctx, id)
}

func (uc *NotificationUseCase) SubscribeNotifications(ctx context.Context, onChange func([]*entity.Notification)) (func(), error) {
	return uc.notificationRepo.Subscribe(ctx, onChange)
}
