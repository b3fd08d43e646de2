package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender delivers transactional email through the Gmail API
type GmailSender struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewGmailSender creates a sender authorised by tokenSource
func NewGmailSender(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (repository.EmailSender, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return NewGmailSenderWithService(service, from, logger), nil
}

// NewGmailSenderWithService wraps an existing Gmail client
func NewGmailSenderWithService(service *gmail.Service, from string, logger logger.Logger) *GmailSender {
	return &GmailSender{
		gmailService: service,
		from:         from,
		logger:       logger,
	}
}

// SendEmail sends msg and returns the Gmail message id
func (s *GmailSender) SendEmail(ctx context.Context, msg entity.EmailMessage) (string, error) {
	if msg.To == "" {
		return "", fmt.Errorf("email has no recipients")
	}

	raw := BuildMIMEMessage(s.from, msg, time.Now())

	sent, err := s.gmailService.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Email sent",
		"messageId", sent.Id,
		"to", msg.To,
		"subject", msg.Subject)

	return sent.Id, nil
}

// BuildMIMEMessage renders msg as a multipart/alternative RFC 5322 message.
// The text part is omitted when msg.Text is empty.
func BuildMIMEMessage(from string, msg entity.EmailMessage, now time.Time) []byte {
	boundary := "recharge-" + strings.ReplaceAll(uuid.NewString(), "-", "")

	var b strings.Builder
	if from != "" {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", now.UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	if msg.Text != "" {
		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.Text)
		b.WriteString("\r\n")
	}

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return []byte(b.String())
}
