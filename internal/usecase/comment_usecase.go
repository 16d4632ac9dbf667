package usecase

import (
	"context"
	"strings"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/domain/repository"
	"ticketboom/pkg/errors"
)

type CommentUseCase struct {
	commentRepo repository.CommentRepository
	ticketRepo  repository.TicketRepository
}

func NewCommentUseCase(commentRepo repository.CommentRepository, ticketRepo repository.TicketRepository) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
	}
}

func (uc *CommentUseCase) AddComment(ctx context.Context, ticketID, userEmail, text string) (*entity.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.BadRequest("Comment text is required", nil)
	}
	if userEmail == "" {
		return nil, errors.Unauthorized("Sign in to leave a comment", nil)
	}

	if _, err := uc.ticketRepo.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		TicketID:  ticketID,
		UserEmail: userEmail,
		Text:      strings.TrimSpace(text),
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (uc *CommentUseCase) ListComments(ctx context.Context, ticketID string) ([]*entity.Comment, error) {
	return uc.commentRepo.ListByTicket(ctx, ticketID)
}

func (uc *CommentUseCase) SubscribeComments(ctx context.Context, ticketID string, onChange func([]*entity.Comment)) (func(), error) {
	return uc.commentRepo.Subscribe(ctx, ticketID, onChange)
}
