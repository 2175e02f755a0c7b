package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through an SMTP relay using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer constructs a mailer for the given relay and sender address.
func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// SendPasswordReset mails the raw reset token. The context is accepted for
// interface symmetry; gomail's DialAndSend has no cancellation hook.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, email, name, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password reset request")

	body := fmt.Sprintf(`
		<h3>Hello %s,</h3>
		<p>We received a request to reset the password for your account.</p>
		<p>Use the following token to set a new password: <strong>%s</strong></p>
		<p>The token expires soon and can be used only once.
		If you did not request this change, you can ignore this email.</p>
	`, name, token)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

// SendWelcome mails a greeting after registration.
func (m *SMTPMailer) SendWelcome(ctx context.Context, email, name string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome!")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. Time to build a burger.</p>
	`, name)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
