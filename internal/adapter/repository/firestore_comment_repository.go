package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/domain/repository"
	"ticketboom/pkg/errors"
	"ticketboom/pkg/logger"
)

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{
		client: client,
	}
}

func (r *firestoreCommentRepository) comments(ticketID string) *firestore.CollectionRef {
	return r.client.Collection("tickets").Doc(ticketID).Collection("comments")
}

func (r *firestoreCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}

	// Thread order is by createdAt, so the timestamp must come from the
	// store's commit time, not a replica's clock.
	res, err := r.comments(comment.TicketID).Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}
	comment.CreatedAt = res.UpdateTime

	return nil
}

func (r *firestoreCommentRepository) ListByTicket(ctx context.Context, ticketID string) ([]*entity.Comment, error) {
	iter := r.comments(ticketID).OrderBy("createdAt", firestore.Asc).Documents(ctx)

	var comments []*entity.Comment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate comments", err)
		}

		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comment.ID = doc.Ref.ID
		comment.TicketID = ticketID
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestoreCommentRepository) Subscribe(ctx context.Context, ticketID string, onChange func([]*entity.Comment)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	snapshots := r.comments(ticketID).OrderBy("createdAt", firestore.Asc).Snapshots(ctx)

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Comment subscription for ticket %s stopped: %v", ticketID, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read comment snapshot for ticket %s: %v", ticketID, err)
				continue
			}

			comments := make([]*entity.Comment, 0, len(docs))
			for _, doc := range docs {
				var comment entity.Comment
				if err := doc.DataTo(&comment); err != nil {
					continue
				}
				comment.ID = doc.Ref.ID
				comment.TicketID = ticketID
				comments = append(comments, &comment)
			}

			onChange(comments)
		}
	}()

	return cancel, nil
}
