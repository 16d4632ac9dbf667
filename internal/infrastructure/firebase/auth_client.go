package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase auth client for token verification and
// email-verification link generation.
type AuthClient struct {
	client      *auth.Client
	redirectURL string
}

func NewAuthClient(client *auth.Client, redirectURL string) *AuthClient {
	return &AuthClient{
		client:      client,
		redirectURL: redirectURL,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return f.client.VerifyIDToken(ctx, idToken)
}

// EmailVerificationLink generates a provider-signed verification link that
// redirects to the configured landing page after the address is confirmed.
func (f *AuthClient) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	settings := &auth.ActionCodeSettings{
		URL: f.redirectURL,
	}
	return f.client.EmailVerificationLinkWithSettings(ctx, email, settings)
}
