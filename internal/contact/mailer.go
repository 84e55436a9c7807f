package contact

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer dispatches a single transactional email.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) Send(ctx context.Context, email Email) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
