package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Submission is one contact-form post. It is never persisted; it exists only
// for the duration of the two outgoing sends.
type Submission struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Honeypot string
}

// ErrMissingFields is returned when a required field is absent. No email is
// sent in that case.
var ErrMissingFields = errors.New("missing required fields")

// Service validates a submission and dispatches the owner notification plus
// the sender acknowledgement.
type Service interface {
	Notify(ctx context.Context, sub Submission) error
}

type service struct {
	mailer Mailer
	from   string
	owner  string
}

func NewService(mailer Mailer, from, owner string) Service {
	return &service{mailer: mailer, from: from, owner: owner}
}

func (s *service) Notify(ctx context.Context, sub Submission) error {
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return ErrMissingFields
	}

	// Bots fill the hidden field; drop the submission but report success so
	// they get no signal that it was detected.
	if sub.Honeypot != "" {
		slog.InfoContext(ctx, "honeypot tripped, dropping submission", "email", sub.Email)
		return nil
	}

	notification, err := renderOwnerNotification(sub)
	if err != nil {
		return fmt.Errorf("rendering notification: %w", err)
	}
	acknowledgement, err := renderAcknowledgement(sub)
	if err != nil {
		return fmt.Errorf("rendering acknowledgement: %w", err)
	}

	if err := s.mailer.Send(ctx, Email{
		From:    s.from,
		To:      s.owner,
		Subject: "New Contact Form Message: " + subjectOrDefault(sub.Subject),
		HTML:    notification,
	}); err != nil {
		return fmt.Errorf("notifying owner: %w", err)
	}

	if err := s.mailer.Send(ctx, Email{
		From:    s.from,
		To:      sub.Email,
		Subject: "Thank you for reaching out!",
		HTML:    acknowledgement,
	}); err != nil {
		return fmt.Errorf("acknowledging sender: %w", err)
	}

	slog.InfoContext(ctx, "contact submission delivered", "from", sub.Email)
	return nil
}

func subjectOrDefault(subject string) string {
	if subject == "" {
		return "No Subject"
	}
	return subject
}
