package repository

import (
	"context"
	"time"

	"recharge-travels-service/internal/domain/entity"
)

// EmailRepository records outgoing notification emails
type EmailRepository interface {
	Save(ctx context.Context, log *entity.EmailLog) error
	MarkSent(ctx context.Context, id, providerID string, sentAt time.Time) error
	MarkFailed(ctx context.Context, id, errorDetail string) error
	FindByStatus(ctx context.Context, status string, limit int) ([]*entity.EmailLog, error)
}
