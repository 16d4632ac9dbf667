package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/domain/repository"
	"ticketboom/pkg/errors"
)

type firestoreTicketRepository struct {
	client *firestore.Client
}

func NewFirestoreTicketRepository(client *firestore.Client) repository.TicketRepository {
	return &firestoreTicketRepository{
		client: client,
	}
}

func (r *firestoreTicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if ticket.ID == "" {
		doc := r.client.Collection("tickets").NewDoc()
		ticket.ID = doc.ID
	}

	// createdAt carries the serverTimestamp option, so the store assigns the
	// commit time; the write result reports it back for the response body.
	res, err := r.client.Collection("tickets").Doc(ticket.ID).Set(ctx, ticket)
	if err != nil {
		return errors.Internal("Failed to create ticket", err)
	}
	ticket.CreatedAt = res.UpdateTime

	return nil
}

func (r *firestoreTicketRepository) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	doc, err := r.client.Collection("tickets").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Ticket", err)
		}
		return nil, errors.Internal("Failed to get ticket", err)
	}

	var ticket entity.Ticket
	if err := doc.DataTo(&ticket); err != nil {
		return nil, errors.Internal("Failed to parse ticket data", err)
	}
	ticket.ID = doc.Ref.ID

	return &ticket, nil
}

func (r *firestoreTicketRepository) List(ctx context.Context) ([]*entity.Ticket, error) {
	// Older documents never carried a deleted field, so an equality filter
	// would drop them; fetch and filter in memory instead.
	iter := r.client.Collection("tickets").Documents(ctx)
	var tickets []*entity.Ticket

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate tickets", err)
		}

		var ticket entity.Ticket
		if err := doc.DataTo(&ticket); err != nil {
			return nil, errors.Internal("Failed to parse ticket data", err)
		}
		ticket.ID = doc.Ref.ID

		if ticket.Deleted {
			continue
		}
		tickets = append(tickets, &ticket)
	}

	// Premium listings first, stable otherwise.
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].Premium && !tickets[j].Premium
	})

	return tickets, nil
}

func (r *firestoreTicketRepository) ListByOwner(ctx context.Context, email string) ([]*entity.Ticket, error) {
	iter := r.client.Collection("tickets").Query.Where("userEmail", "==", email).Documents(ctx)
	var tickets []*entity.Ticket

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate owner tickets", err)
		}

		var ticket entity.Ticket
		if err := doc.DataTo(&ticket); err != nil {
			return nil, errors.Internal("Failed to parse ticket data", err)
		}
		ticket.ID = doc.Ref.ID
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

func (r *firestoreTicketRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := r.client.Collection("tickets").Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Ticket", err)
		}
		return errors.Internal("Failed to update ticket", err)
	}

	return nil
}

func (r *firestoreTicketRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.client.Collection("tickets").Doc(id).Update(ctx, []firestore.Update{
		{Path: "deleted", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Ticket", err)
		}
		return errors.Internal("Failed to soft delete ticket", err)
	}

	return nil
}

func (r *firestoreTicketRepository) HardDelete(ctx context.Context, id string) error {
	_, err := r.client.Collection("tickets").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete ticket", err)
	}

	return nil
}

func (r *firestoreTicketRepository) SetPremiumPending(ctx context.Context, id string, chatID int64) error {
	updates := []firestore.Update{
		{Path: "premiumPending", Value: true},
	}
	if chatID != 0 {
		updates = append(updates, firestore.Update{Path: "premiumUserChat", Value: chatID})
	}

	_, err := r.client.Collection("tickets").Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Ticket", err)
		}
		return errors.Internal("Failed to mark ticket premium pending", err)
	}

	return nil
}

func (r *firestoreTicketRepository) ClearPremiumPending(ctx context.Context, id string) error {
	_, err := r.client.Collection("tickets").Doc(id).Update(ctx, []firestore.Update{
		{Path: "premiumPending", Value: false},
		{Path: "premiumUserChat", Value: firestore.Delete},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Ticket", err)
		}
		return errors.Internal("Failed to clear premium pending", err)
	}

	return nil
}

func (r *firestoreTicketRepository) FindPendingByChat(ctx context.Context, chatID int64) ([]*entity.Ticket, error) {
	iter := r.client.Collection("tickets").Query.
		Where("premiumPending", "==", true).
		Where("premiumUserChat", "==", chatID).
		Documents(ctx)

	var tickets []*entity.Ticket
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate pending tickets", err)
		}

		var ticket entity.Ticket
		if err := doc.DataTo(&ticket); err != nil {
			return nil, errors.Internal("Failed to parse ticket data", err)
		}
		ticket.ID = doc.Ref.ID
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

func (r *firestoreTicketRepository) ApprovePremium(ctx context.Context, id string) error {
	return r.approvePremium(ctx, id, false)
}

func (r *firestoreTicketRepository) ApprovePremiumIfPending(ctx context.Context, id string) error {
	return r.approvePremium(ctx, id, true)
}

func (r *firestoreTicketRepository) approvePremium(ctx context.Context, id string, requirePending bool) error {
	ref := r.client.Collection("tickets").Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Ticket", err)
			}
			return err
		}

		var ticket entity.Ticket
		if err := doc.DataTo(&ticket); err != nil {
			return err
		}

		// A second decision on the same request lands here; leave the
		// document untouched so double-clicks stay harmless.
		if ticket.Premium && !ticket.PremiumPending {
			return nil
		}

		// The request was withdrawn (rejected) between the relay and this
		// press; a stale approve must not promote the listing.
		if requirePending && !ticket.PremiumPending {
			return errors.Conflict("Premium request is no longer pending")
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "premium", Value: true},
			{Path: "premiumPending", Value: false},
			{Path: "premiumUserChat", Value: firestore.Delete},
		})
	})
	if err != nil {
		if errors.Is(err, "NOT_FOUND") || errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to approve premium", err)
	}

	return nil
}
