package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketboom/pkg/errors"
)

func TestSendVerificationRequiresEmail(t *testing.T) {
	uc := NewEmailUseCase(&fakeLinkGenerator{link: "https://verify.example/x"}, &fakeMailer{})

	err := uc.SendVerification(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestSendVerificationMailsLink(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewEmailUseCase(&fakeLinkGenerator{link: "https://verify.example/x"}, mailer)

	require.NoError(t, uc.SendVerification(context.Background(), "owner@example.com"))

	require.Len(t, mailer.to, 1)
	assert.Equal(t, "owner@example.com", mailer.to[0])
	assert.Equal(t, "Confirm your e-mail", mailer.subjects[0])
	assert.Contains(t, mailer.bodies[0], "https://verify.example/x")
}

func TestSendVerificationSurfacesTransportFailure(t *testing.T) {
	mailer := &fakeMailer{err: stderrors.New("smtp: 535 authentication failed")}
	uc := NewEmailUseCase(&fakeLinkGenerator{link: "https://verify.example/x"}, mailer)

	err := uc.SendVerification(context.Background(), "owner@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestSendVerificationSurfacesLinkFailure(t *testing.T) {
	links := &fakeLinkGenerator{err: stderrors.New("auth: user not found")}
	uc := NewEmailUseCase(links, &fakeMailer{})

	err := uc.SendVerification(context.Background(), "owner@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}
