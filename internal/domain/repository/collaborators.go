package repository

import (
	"context"
	"io"

	"recharge-travels-service/internal/domain/entity"
)

// CheckoutGateway creates hosted checkout sessions for card payments
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req entity.CheckoutRequest) (string, error)
}

// EmailSender delivers a single email and returns the provider message id
type EmailSender interface {
	SendEmail(ctx context.Context, msg entity.EmailMessage) (string, error)
}

// ObjectStorage stores uploaded media and returns its public URL
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error)
}

// EventPublisher publishes domain events to the broker
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event entity.DomainEvent) error
}
