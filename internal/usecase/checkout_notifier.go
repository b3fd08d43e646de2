package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
)

// CheckoutAwaiter waits for the payment service to publish a checkout result
type CheckoutAwaiter interface {
	Await(ctx context.Context, sessionID string) (*entity.CheckoutNotification, error)
}

// CheckoutNotifier reads and writes the checkout notification side channel
type CheckoutNotifier struct {
	repo         repository.CheckoutNotificationRepository
	logger       logger.Logger
	pollInterval time.Duration
}

// NewCheckoutNotifier creates a notifier polling every pollInterval
func NewCheckoutNotifier(
	repo repository.CheckoutNotificationRepository,
	logger logger.Logger,
	pollInterval time.Duration,
) *CheckoutNotifier {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}

	return &CheckoutNotifier{
		repo:         repo,
		logger:       logger,
		pollInterval: pollInterval,
	}
}

// Await blocks until the session has a url or an error, or ctx is done.
// The caller owns the deadline.
func (n *CheckoutNotifier) Await(ctx context.Context, sessionID string) (*entity.CheckoutNotification, error) {
	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		notification, err := n.repo.FindBySessionID(ctx, sessionID)
		if err != nil && ctx.Err() == nil {
			n.logger.Warn("Failed to read checkout notification", "sessionId", sessionID, "error", err)
		}
		if notification != nil && (notification.URL != "" || notification.Error != "") {
			return notification, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Notify records a result posted by the payment service
func (n *CheckoutNotifier) Notify(ctx context.Context, notification *entity.CheckoutNotification) error {
	notification.SessionID = strings.TrimSpace(notification.SessionID)
	if notification.SessionID == "" {
		return &ValidationError{Fields: map[string]string{"sessionId": "Session id is required"}}
	}
	if notification.URL == "" && notification.Error == "" {
		return &ValidationError{Fields: map[string]string{"url": "Either url or error is required"}}
	}

	notification.UpdatedAt = time.Now().UTC()
	if err := n.repo.Upsert(ctx, notification); err != nil {
		return fmt.Errorf("failed to store checkout notification: %w", err)
	}

	n.logger.Info("Checkout notification received",
		"sessionId", notification.SessionID,
		"hasUrl", notification.URL != "",
		"error", notification.Error)

	return nil
}

// SignCheckoutNotification returns base64(HMAC-SHA256(sessionID + "\n" + body))
// under secret. Binding the session id stops a signed body from being
// replayed against another session.
func SignCheckoutNotification(sessionID string, body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(sessionID))
	_, _ = mac.Write([]byte("\n"))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyCheckoutSignature checks signature against the session id and body
func VerifyCheckoutSignature(sessionID string, body []byte, signature, secret string) bool {
	if signature == "" || secret == "" || strings.TrimSpace(sessionID) == "" {
		return false
	}

	expected := SignCheckoutNotification(sessionID, body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
