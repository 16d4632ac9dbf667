package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/domain/repository"
	"ticketboom/pkg/errors"
	"ticketboom/pkg/logger"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}

	res, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}
	notification.CreatedAt = res.UpdateTime

	return nil
}

func (r *firestoreNotificationRepository) List(ctx context.Context) ([]*entity.Notification, error) {
	iter := r.client.Collection("notifications").OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var notifications []*entity.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, errors.Internal("Failed to parse notification data", err)
		}
		notification.ID = doc.Ref.ID
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

func (r *firestoreNotificationRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.client.Collection("notifications").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count notifications", err)
	}
	return len(docs), nil
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection("notifications").Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Notification", err)
		}
		return errors.Internal("Failed to mark notification read", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) Subscribe(ctx context.Context, onChange func([]*entity.Notification)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	snapshots := r.client.Collection("notifications").OrderBy("createdAt", firestore.Desc).Snapshots(ctx)

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Notification subscription stopped: %v", err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read notification snapshot: %v", err)
				continue
			}

			notifications := make([]*entity.Notification, 0, len(docs))
			for _, doc := range docs {
				var notification entity.Notification
				if err := doc.DataTo(&notification); err != nil {
					continue
				}
				notification.ID = doc.Ref.ID
				notifications = append(notifications, &notification)
			}

			onChange(notifications)
		}
	}()

	return cancel, nil
}
