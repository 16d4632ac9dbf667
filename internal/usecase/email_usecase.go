package usecase

import (
	"context"
	"fmt"

	"ticketboom/pkg/errors"
)

// VerificationLinkGenerator issues a provider-signed email-verification link
// bound to the configured post-verification redirect.
type VerificationLinkGenerator interface {
	EmailVerificationLink(ctx context.Context, email string) (string, error)
}

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type EmailUseCase struct {
	links  VerificationLinkGenerator
	mailer Mailer
}

func NewEmailUseCase(links VerificationLinkGenerator, mailer Mailer) *EmailUseCase {
	return &EmailUseCase{
		links:  links,
		mailer: mailer,
	}
}

// SendVerification mails the caller a verification link. One attempt, no
// queueing: a transport failure surfaces directly with its message.
func (uc *EmailUseCase) SendVerification(ctx context.Context, email string) error {
	if email == "" {
		return errors.Unauthorized("An authenticated email address is required", nil)
	}

	link, err := uc.links.EmailVerificationLink(ctx, email)
	if err != nil {
		return errors.Internal(err.Error(), err)
	}

	if err := uc.mailer.Send(email, "Confirm your e-mail", verificationEmailBody(link)); err != nil {
		return errors.Internal(err.Error(), err)
	}

	return nil
}

func verificationEmailBody(link string) string {
	return fmt.Sprintf(`
<div style="font-family:Arial,sans-serif;max-width:520px;margin:auto">
  <h2>Confirm your e-mail</h2>
  <p>Press the button below to confirm your address:</p>
  <p>
    <a href="%[1]s"
       style="display:inline-block;padding:10px 18px;background:#4CAF50;color:#fff;text-decoration:none;border-radius:6px">
      Confirm e-mail
    </a>
  </p>
  <p style="color:#666;font-size:12px">
    If the button does not work, copy this link into your browser:<br>
    <a href="%[1]s">%[1]s</a>
  </p>
</div>`, link)
}
