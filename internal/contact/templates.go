package contact

import (
	"html/template"
	"strings"
	"time"
)

// The HTML bodies mirror the site's dark theme. User-supplied values go
// through html/template so they are escaped.

var ownerTemplate = template.Must(template.New("owner").Parse(`
<div style="font-family: system-ui, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background: #0a0a0a; color: #e5e5e5;">
  <div style="border: 1px solid rgba(255,255,255,0.1); border-radius: 16px; padding: 24px;">
    <h2 style="color: #6ee7b7; margin-top: 0;">New Contact Form Submission</h2>
    <div style="margin: 20px 0; padding: 16px; background: rgba(0,0,0,0.3); border-radius: 12px;">
      <p style="margin: 8px 0;"><strong style="color: #a3a3a3;">From:</strong> {{.Name}}</p>
      <p style="margin: 8px 0;"><strong style="color: #a3a3a3;">Email:</strong> <a href="mailto:{{.Email}}" style="color: #6ee7b7;">{{.Email}}</a></p>
      <p style="margin: 8px 0;"><strong style="color: #a3a3a3;">Subject:</strong> {{.Subject}}</p>
    </div>
    <div style="margin: 20px 0;">
      <h3 style="color: #a3a3a3; font-size: 14px; text-transform: uppercase;">Message:</h3>
      <p style="white-space: pre-wrap; line-height: 1.6;">{{.Message}}</p>
    </div>
    <p style="font-size: 12px; color: #737373; border-top: 1px solid rgba(255,255,255,0.1); padding-top: 16px;">
      Sent from your website contact form at {{.SentAt}}
    </p>
  </div>
</div>`))

var acknowledgementTemplate = template.Must(template.New("acknowledgement").Parse(`
<div style="font-family: system-ui, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background: #0a0a0a; color: #e5e5e5;">
  <div style="border: 1px solid rgba(255,255,255,0.1); border-radius: 16px; padding: 24px;">
    <h2 style="color: #6ee7b7; margin-top: 0;">Thanks for getting in touch!</h2>
    <p style="line-height: 1.7;">Hi {{.Name}},</p>
    <p style="line-height: 1.7;">Thank you for reaching out through my website. I've received your message and will get back to you as soon as possible.</p>
    <div style="margin: 24px 0; padding: 16px; background: rgba(16,185,129,0.1); border-radius: 12px;">
      <p style="margin: 0; color: #6ee7b7; font-weight: 600;">Your message:</p>
      <p style="margin: 12px 0 0 0; white-space: pre-wrap; line-height: 1.6;">{{.Message}}</p>
    </div>
    <p style="line-height: 1.7;">I typically respond within 24-48 hours. If your inquiry is urgent, reach me directly at <a href="mailto:muaiad@muaiadhadad.me" style="color: #6ee7b7;">muaiad@muaiadhadad.me</a>.</p>
    <p style="font-weight: 600;">Best regards,<br>Muaiad Hadad</p>
    <p style="font-size: 14px; color: #737373;">
      <a href="https://muaiadhadad.me" style="color: #6ee7b7;">muaiadhadad.me</a> |
      <a href="https://github.com/MuaiadHadad" style="color: #6ee7b7;">GitHub</a> |
      <a href="https://www.linkedin.com/in/muaiad-hadad/" style="color: #6ee7b7;">LinkedIn</a>
    </p>
  </div>
  <p style="text-align: center; font-size: 12px; color: #525252;">This is an automated response. Please do not reply to this email.</p>
</div>`))

type templateData struct {
	Name    string
	Email   string
	Subject string
	Message string
	SentAt  string
}

func renderOwnerNotification(sub Submission) (string, error) {
	var b strings.Builder
	err := ownerTemplate.Execute(&b, templateData{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: subjectOrDefault(sub.Subject),
		Message: sub.Message,
		SentAt:  time.Now().UTC().Format(time.RFC1123),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderAcknowledgement(sub Submission) (string, error) {
	var b strings.Builder
	err := acknowledgementTemplate.Execute(&b, templateData{
		Name:    sub.Name,
		Message: sub.Message,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
