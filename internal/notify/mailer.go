package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Mailer sends notifications over SMTP with implicit TLS, the scheme app
// passwords use on port 465.
type Mailer struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

func NewMailer(host string, port int, from, username, password string) *Mailer {
	return &Mailer{Host: host, Port: port, From: from, Username: username, Password: password}
}

// Send mails one notification. The password is checked here, not at startup:
// a run that finds nothing wrong never needs it.
func (m *Mailer) Send(ctx context.Context, recipients []string, subject, body string) error {
	if m.Password == "" {
		return errors.New("email app password is not set")
	}
	if len(recipients) == 0 {
		return errors.New("no recipients")
	}

	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return fmt.Errorf("set from %q: %w", m.From, err)
	}
	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
	}
	if m.Port == 465 {
		// App-password providers expect implicit TLS on 465.
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(m.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
