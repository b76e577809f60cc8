package mailer

import (
	"github.com/crypt0g30rgy/anony/internal/config"
	"github.com/wneessen/go-mail"
)

// Mailer abstracts outgoing mail so services and tests never touch SMTP.
type Mailer interface {
	Send(to, subject, body string) error
}

type SmtpMailer struct {
	client *mail.Client
	sender string
}

func NewSmtpMailer(cfg config.MailConfig) (*SmtpMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}

	switch {
	case cfg.UseSSL:
		opts = append(opts, mail.WithSSL())
	case cfg.UseTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(cfg.Server, opts...)
	if err != nil {
		return nil, err
	}

	return &SmtpMailer{
		client: client,
		sender: cfg.DefaultSender,
	}, nil
}

func (m *SmtpMailer) Send(to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return m.client.DialAndSend(msg)
}
