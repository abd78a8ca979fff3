package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/config"

	smtp "github.com/xhit/go-simple-mail/v2"
)

var errMailDisabled = errors.New("mail not configured")

// Notifier emails a user once a reviewer decides their course intention.
// Construction never fails: with an empty MAIL_HOST the notifier stays
// disabled and NotifyDecision is a no-op.
type Notifier struct {
	cfg config.MailConfig
}

func NewNotifier(cfg config.MailConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.cfg.Host != ""
}

func (n *Notifier) NotifyDecision(ctx context.Context, toEmail, userName, courseTitle string, approved bool) error {
	if !n.Enabled() {
		return nil
	}
	if toEmail == "" {
		return errMailDisabled
	}

	client, err := n.connect()
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	outcome := "approved"
	if !approved {
		outcome = "rejected"
	}

	from := n.cfg.From
	if from == "" {
		from = n.cfg.Username
	}

	msg := smtp.NewMSG()
	msg.SetFrom(from).
		AddTo(toEmail).
		SetSubject(fmt.Sprintf("Course registration %s: %s", outcome, courseTitle))

	body := fmt.Sprintf(
		"Hello %s,\n\nYour registration intention for the course %q was %s.\n\nCareer Compass",
		userName, courseTitle, outcome,
	)
	msg.SetBody(smtp.TextPlain, body)

	if msg.Error != nil {
		return msg.Error
	}

	done := make(chan error, 1)
	go func() {
		done <- msg.Send(client)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) connect() (*smtp.SMTPClient, error) {
	server := smtp.NewSMTPClient()
	server.Host = n.cfg.Host
	server.Port = n.cfg.Port
	server.Username = n.cfg.Username
	server.Password = n.cfg.Password

	switch n.cfg.Port {
	case 465:
		server.Encryption = smtp.EncryptionSSL
	case 587:
		server.Encryption = smtp.EncryptionSTARTTLS
	default:
		server.Encryption = smtp.EncryptionNone
	}

	server.Authentication = smtp.AuthLogin
	server.KeepAlive = false
	server.ConnectTimeout = 30 * time.Second
	server.SendTimeout = 30 * time.Second

	return server.Connect()
}
