package repository

import (
	"context"

	"recharge-travels-service/internal/domain/entity"
)

// BookingRepository stores tour booking records
type BookingRepository interface {
	CollectionRepository[entity.BookingRecord]
	FindByReference(ctx context.Context, reference string) (*entity.BookingRecord, error)
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) error
}

// CheckoutNotificationRepository is the side channel the payment service
// writes to, keyed by checkout session id.
type CheckoutNotificationRepository interface {
	Upsert(ctx context.Context, n *entity.CheckoutNotification) error
	FindBySessionID(ctx context.Context, sessionID string) (*entity.CheckoutNotification, error)
}

// TourCatalogRepository resolves bookable tour configuration
type TourCatalogRepository interface {
	GetByTourID(ctx context.Context, tourID string) (*entity.Tour, error)
}
