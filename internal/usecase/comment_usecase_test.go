package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketboom/pkg/errors"
)

func newCommentFixture(t *testing.T) (*memTicketRepo, *CommentUseCase) {
	t.Helper()
	ticketRepo := newMemTicketRepo()
	return ticketRepo, NewCommentUseCase(newMemCommentRepo(), ticketRepo)
}

func TestAddCommentValidation(t *testing.T) {
	ctx := context.Background()
	ticketRepo, uc := newCommentFixture(t)
	ticket := seedTicket(t, ticketRepo, "Radiohead")

	_, err := uc.AddComment(ctx, ticket.ID, "reader@example.com", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.AddComment(ctx, ticket.ID, "", "looks great")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.AddComment(ctx, "missing", "reader@example.com", "looks great")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCommentsKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	ticketRepo, uc := newCommentFixture(t)
	ticket := seedTicket(t, ticketRepo, "Radiohead")

	for _, text := range []string{"first", "second", "third"} {
		_, err := uc.AddComment(ctx, ticket.ID, "reader@example.com", text)
		require.NoError(t, err)
	}

	thread, err := uc.ListComments(ctx, ticket.ID)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "first", thread[0].Text)
	assert.Equal(t, "second", thread[1].Text)
	assert.Equal(t, "third", thread[2].Text)
}

func TestAddCommentTrimsText(t *testing.T) {
	ctx := context.Background()
	ticketRepo, uc := newCommentFixture(t)
	ticket := seedTicket(t, ticketRepo, "Radiohead")

	comment, err := uc.AddComment(ctx, ticket.ID, "reader@example.com", "  looks great  ")
	require.NoError(t, err)
	assert.Equal(t, "looks great", comment.Text)
	assert.Equal(t, "reader@example.com", comment.UserEmail)
}
