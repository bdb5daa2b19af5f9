// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vivaha/config"
	"vivaha/internal/domain/service"
	"vivaha/internal/errors"
)

const resendEndpoint = "https://api.resend.com/emails"

type resendMailer struct {
	apiKey     string
	from       string
	enabled    bool
	httpClient *http.Client
	logger     *slog.Logger
}

// emailRequest is the Resend API payload.
type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NewResendMailer creates a Mailer backed by Resend. When the mailer is
// disabled in config, Send logs and drops messages instead of failing,
// so registration flows keep working in development.
func NewResendMailer(cfg *config.MailerConfig, logger *slog.Logger) service.Mailer {
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = cfg.FromName + " <" + cfg.FromEmail + ">"
	}

	return &resendMailer{
		apiKey:     cfg.APIKey,
		from:       from,
		enabled:    cfg.Enabled,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (m *resendMailer) Send(ctx context.Context, email service.Email) error {
	if !m.enabled || m.apiKey == "" {
		m.logger.InfoContext(ctx, "mailer disabled, dropping email",
			slog.String("to", email.To),
			slog.String("subject", email.Subject))

		return nil
	}

	payload, err := json.Marshal(emailRequest{
		From:    m.from,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return errors.Wrap(err, "marshal email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return errors.Wrap(err, "build email request")
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send email")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.Errorf("email API returned status %d", resp.StatusCode)
	}

	m.logger.InfoContext(ctx, "email sent", slog.String("to", email.To))

	return nil
}
