// Package mailer sends plain-text notification emails.
package mailer

import (
	"context"
	"log/slog"
	"strings"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// DevConsoleMailer logs emails instead of sending them.
type DevConsoleMailer struct {
	log *slog.Logger
}

func NewDevConsoleMailer(log *slog.Logger) *DevConsoleMailer {
	return &DevConsoleMailer{log: log}
}

func (m *DevConsoleMailer) Send(ctx context.Context, e Email) error {
	m.log.InfoContext(ctx, "dev email",
		slog.String("to", e.To),
		slog.String("subject", e.Subject),
		slog.Int("body_bytes", len(e.Body)),
	)
	return nil
}

// headerValue drops line breaks so user input cannot add headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(strings.TrimSpace(s))
}
