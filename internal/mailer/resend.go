package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/skamga/accounts-api/internal/config"
)

const appName = "Accounts API"

// ResendMailer sends transactional email through the Resend API.
type ResendMailer struct {
	client  *resend.Client
	sender  string
	baseURL string
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		client:  resend.NewClient(cfg.EmailAPIKey),
		sender:  cfg.EmailSender,
		baseURL: cfg.EmailBaseURL,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to string, tmpl Template, data map[string]string) error {
	if data == nil {
		data = map[string]string{}
	}
	data["BaseURL"] = m.baseURL
	data["AppName"] = appName

	subject, body, err := Render(tmpl, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send %q mail: %w", tmpl, err)
	}

	slog.Info("mail sent", "template", string(tmpl), "mail_id", sent.Id)
	return nil
}
