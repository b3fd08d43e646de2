package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
)

var errNoSender = errors.New("email sender not configured")

// Notifier renders, records and delivers notification emails
type Notifier struct {
	emailRepo repository.EmailRepository
	sender    repository.EmailSender
	templates TemplateRegistry
	metrics   *metrics.Metrics
	logger    logger.Logger
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewNotifier creates a new notifier. sender may be nil, in which case
// every email is recorded as failed.
func NewNotifier(
	emailRepo repository.EmailRepository,
	sender repository.EmailSender,
	templates TemplateRegistry,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *Notifier {
	return &Notifier{
		emailRepo: emailRepo,
		sender:    sender,
		templates: templates,
		metrics:   metrics,
		logger:    logger,
		timeout:   30 * time.Second,
	}
}

// Send renders the email of kind for data and delivers it now
func (n *Notifier) Send(ctx context.Context, kind string, data interface{}) error {
	template := n.templates.Get(kind)
	if template == nil {
		return fmt.Errorf("no email template registered for %s", kind)
	}

	msg, err := template.Render(data)
	if err != nil {
		return fmt.Errorf("failed to render %s email: %w", kind, err)
	}

	log := &entity.EmailLog{Kind: kind, Message: msg}
	if err := n.emailRepo.Save(ctx, log); err != nil {
		// Delivery still goes ahead without a log record
		n.logger.Error("Failed to record email", "kind", kind, "error", err)
	}

	providerID, err := n.deliver(ctx, msg)
	if err != nil {
		n.metrics.EmailsSent.WithLabelValues(entity.StatusFailed).Inc()
		if log.ID != "" {
			if markErr := n.emailRepo.MarkFailed(ctx, log.ID, err.Error()); markErr != nil {
				n.logger.Error("Failed to mark email failed", "id", log.ID, "error", markErr)
			}
		}
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}

	n.metrics.EmailsSent.WithLabelValues(entity.StatusCompleted).Inc()
	if log.ID != "" {
		if err := n.emailRepo.MarkSent(ctx, log.ID, providerID, time.Now().UTC()); err != nil {
			n.logger.Error("Failed to mark email sent", "id", log.ID, "error", err)
		}
	}

	n.logger.Info("Email delivered", "kind", kind, "to", msg.To, "providerId", providerID)
	return nil
}

func (n *Notifier) deliver(ctx context.Context, msg entity.EmailMessage) (string, error) {
	if n.sender == nil {
		return "", errNoSender
	}
	return n.sender.SendEmail(ctx, msg)
}

// Dispatch sends in the background. Failures are logged and recorded,
// never returned.
func (n *Notifier) Dispatch(kind string, data interface{}) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.Send(ctx, kind, data); err != nil {
			n.logger.Error("Background email failed", "kind", kind, "error", err)
		}
	}()
}

// Wait blocks until all dispatched emails have finished
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// Logs returns recorded emails with the given delivery status
func (n *Notifier) Logs(ctx context.Context, status string, limit int) ([]*entity.EmailLog, error) {
	if status == "" {
		status = entity.StatusFailed
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	logs, err := n.emailRepo.FindByStatus(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find email logs: %w", err)
	}
	if logs == nil {
		logs = []*entity.EmailLog{}
	}
	return logs, nil
}
