package contact_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"muaiadhadad.me/portfolio/internal/contact"
)

type mockMailer struct {
	sendFn func(ctx context.Context, email contact.Email) error
	sent   []contact.Email
}

func (m *mockMailer) Send(ctx context.Context, email contact.Email) error {
	m.sent = append(m.sent, email)
	if m.sendFn != nil {
		return m.sendFn(ctx, email)
	}
	return nil
}

var _ = Describe("Service", func() {
	var (
		ctx    context.Context
		mailer *mockMailer
		svc    contact.Service
	)

	valid := contact.Submission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hiring",
		Message: "Are you available?",
	}

	BeforeEach(func() {
		ctx = context.Background()
		mailer = &mockMailer{}
		svc = contact.NewService(mailer, "re.replay@muaiadhadad.me", "muaiad@muaiadhadad.me")
	})

	Describe("validation", func() {
		It("rejects a submission without an email and sends nothing", func() {
			sub := valid
			sub.Email = ""

			err := svc.Notify(ctx, sub)

			Expect(err).To(MatchError(contact.ErrMissingFields))
			Expect(mailer.sent).To(BeEmpty())
		})

		It("rejects missing name and message too", func() {
			for _, sub := range []contact.Submission{
				{Email: "a@b.c", Message: "hi"},
				{Name: "Ada", Email: "a@b.c"},
			} {
				Expect(svc.Notify(ctx, sub)).To(MatchError(contact.ErrMissingFields))
			}
			Expect(mailer.sent).To(BeEmpty())
		})

		It("accepts a missing subject", func() {
			sub := valid
			sub.Subject = ""

			Expect(svc.Notify(ctx, sub)).To(Succeed())
			Expect(mailer.sent[0].Subject).To(Equal("New Contact Form Message: No Subject"))
		})
	})

	Describe("honeypot", func() {
		It("reports success without sending anything", func() {
			sub := valid
			sub.Honeypot = "http://spam.example"

			Expect(svc.Notify(ctx, sub)).To(Succeed())
			Expect(mailer.sent).To(BeEmpty())
		})
	})

	Describe("delivery", func() {
		It("sends the owner notification first, then the acknowledgement", func() {
			Expect(svc.Notify(ctx, valid)).To(Succeed())

			Expect(mailer.sent).To(HaveLen(2))
			Expect(mailer.sent[0].To).To(Equal("muaiad@muaiadhadad.me"))
			Expect(mailer.sent[0].Subject).To(Equal("New Contact Form Message: Hiring"))
			Expect(mailer.sent[1].To).To(Equal("ada@example.com"))
			Expect(mailer.sent[1].Subject).To(Equal("Thank you for reaching out!"))
		})

		It("includes the submission in both bodies with HTML escaping", func() {
			sub := valid
			sub.Message = `Let's talk about <script>alert(1)</script>`

			Expect(svc.Notify(ctx, sub)).To(Succeed())

			for _, email := range mailer.sent {
				Expect(email.HTML).NotTo(ContainSubstring("<script>"))
				Expect(email.HTML).To(ContainSubstring("&lt;script&gt;"))
			}
			Expect(mailer.sent[0].HTML).To(ContainSubstring("ada@example.com"))
			Expect(mailer.sent[1].HTML).To(ContainSubstring("Hi Ada"))
		})

		It("fails the whole request when the owner notification fails", func() {
			mailer.sendFn = func(_ context.Context, _ contact.Email) error {
				return errors.New("quota exceeded")
			}

			err := svc.Notify(ctx, valid)

			Expect(err).To(MatchError(ContainSubstring("notifying owner")))
			Expect(mailer.sent).To(HaveLen(1))
		})

		It("fails the whole request when the acknowledgement fails", func() {
			mailer.sendFn = func(_ context.Context, email contact.Email) error {
				if email.To == "ada@example.com" {
					return errors.New("mailbox unavailable")
				}
				return nil
			}

			err := svc.Notify(ctx, valid)

			Expect(err).To(MatchError(ContainSubstring("acknowledging sender")))
			Expect(mailer.sent).To(HaveLen(2))
		})
	})
})
