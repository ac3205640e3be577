package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/google/uuid"
)

// Notifier delivers a human-readable message to a member's contact channel.
// Delivery is fire-and-forget from the orchestrator's perspective; retry is
// the implementation's concern.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DevNotifier logs the message instead of delivering it. Default outside
// production so the reset flow works without a mail relay.
type DevNotifier struct {
	logger *slog.Logger
}

func NewDevNotifier(logger *slog.Logger) *DevNotifier {
	return &DevNotifier{logger: logger}
}

func (n *DevNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.logger.InfoContext(ctx, "notification dispatched",
		"message_id", uuid.NewString(),
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}

type SMTPNotifier struct {
	addr   string
	from   string
	logger *slog.Logger
}

func NewSMTPNotifier(addr, from string, logger *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from, logger: logger}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	messageID := uuid.NewString()
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMessage-Id: <%s>\r\n\r\n%s\r\n", n.from, to, subject, messageID, body)
	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	n.logger.InfoContext(ctx, "notification dispatched", "message_id", messageID, "to", to, "subject", subject)
	return nil
}
