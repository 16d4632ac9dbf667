package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotificationsSeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotificationRepo()
	uc := NewNotificationUseCase(repo)

	feed, err := uc.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	texts := []string{feed[0].Text, feed[1].Text}
	assert.Contains(t, texts, "Welcome to TicketBoom! 🎉")
	assert.Contains(t, texts, "Your ticket was published successfully ✅")
	for _, notification := range feed {
		assert.False(t, notification.Read)
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotificationRepo()
	uc := NewNotificationUseCase(repo)

	require.NoError(t, uc.SeedIfEmpty(ctx))
	require.NoError(t, uc.SeedIfEmpty(ctx))

	feed, err := uc.ListNotifications(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotificationRepo()
	uc := NewNotificationUseCase(repo)

	feed, err := uc.ListNotifications(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, feed)

	require.NoError(t, uc.MarkRead(ctx, feed[0].ID))

	feed, err = uc.ListNotifications(ctx)
	require.NoError(t, err)
	assert.True(t, feed[0].Read)
	assert.False(t, feed[1].Read)
}
