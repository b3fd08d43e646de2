package usecase

import (
	"context"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
)

// Routing keys on the events exchange
const (
	EventBookingCreated        = "booking.created"
	EventBookingConfirmed      = "booking.confirmed"
	EventBookingPaymentPending = "booking.payment_pending"
	EventOwnerApproved         = "owner.approved"
	EventOwnerRejected         = "owner.rejected"
	EventOwnerSuspended        = "owner.suspended"
	EventOwnerReactivated      = "owner.reactivated"
)

// publishEvent is best-effort; a nil publisher skips publishing
func publishEvent(
	ctx context.Context,
	publisher repository.EventPublisher,
	log logger.Logger,
	routingKey, aggregateID string,
	data map[string]interface{},
) {
	if publisher == nil {
		return
	}

	event := entity.DomainEvent{
		Type:        routingKey,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Data:        data,
	}

	if err := publisher.Publish(ctx, routingKey, event); err != nil {
		log.Warn("Failed to publish event", "routingKey", routingKey, "aggregateId", aggregateID, "error", err)
	}
}
